package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-foodmap/internal/adapter"
	"github.com/MKhiriev/go-foodmap/models"
)

// tokenEnv lets "current" pick up a token printed by register or login.
const tokenEnv = "FOODMAP_TOKEN"

var errUsage = errors.New("usage: foodmap-client [-a url] [-timeout d] <register|login|current|version> [flags]")

func run(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "register":
		return runRegister(ctx, a, args, out)
	case "login":
		return runLogin(ctx, a, args, out)
	case "current":
		return runCurrent(ctx, a, args, out)
	case "version":
		printBuildInfo()
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func runRegister(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(out)

	var req models.RegisterRequest
	var lng, lat float64
	var withLocation bool
	fs.StringVar(&req.FirstName, "first", "", "First name")
	fs.StringVar(&req.LastName, "last", "", "Last name")
	fs.StringVar(&req.Email, "email", "", "Email address")
	fs.StringVar(&req.Password, "password", "", "Password")
	fs.Float64Var(&lng, "lng", 0, "Home longitude")
	fs.Float64Var(&lat, "lat", 0, "Home latitude")

	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "lng" || f.Name == "lat" {
			withLocation = true
		}
	})
	if withLocation {
		req.Location = models.NewPoint(lng, lat)
	}

	if err := a.Register(ctx, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return printToken(out, a.Token())
}

func runLogin(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(out)

	var req models.LoginRequest
	fs.StringVar(&req.Email, "email", "", "Email address")
	fs.StringVar(&req.Password, "password", "", "Password")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.Login(ctx, req); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return printToken(out, a.Token())
}

func runCurrent(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("current", flag.ContinueOnError)
	fs.SetOutput(out)

	var token string
	fs.StringVar(&token, "token", os.Getenv(tokenEnv), "Bearer token (env "+tokenEnv+")")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if token != "" {
		a.SetToken(token)
	}

	profile, err := a.Current(ctx)
	if err != nil {
		return fmt.Errorf("current: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}

func printToken(out io.Writer, token string) error {
	_, err := fmt.Fprintln(out, token)
	return err
}
