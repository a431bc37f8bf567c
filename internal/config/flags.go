package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// flagParser turns command-line arguments into a partial config.
type flagParser func(args []string) (*StructuredConfig, error)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-r redis URL of the profile cache
//	-cache-ttl profile cache TTL (e.g., "5m")
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-hash-cost bcrypt cost
//	-log-level zerolog level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit-rps requests per second per client on register/login
//	-rate-limit-burst burst per client on register/login
//	-trust-proxy-headers take the client address from proxy headers
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("foodmap", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, redisURL string
	var cacheTTL time.Duration
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var hashCost int
	var logLevel string
	var requestTimeout time.Duration
	var rateLimitRPS float64
	var rateLimitBurst int
	var trustProxyHeaders bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "r", "", "Redis URL of the profile cache")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Profile cache TTL (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt cost")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimitRPS, "rate-limit-rps", 0, "Requests per second per client, negative disables")
	fs.IntVar(&rateLimitBurst, "rate-limit-burst", 0, "Request burst per client")
	fs.BoolVar(&trustProxyHeaders, "trust-proxy-headers", false, "Use X-Forwarded-For/X-Real-IP as client address")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: hashCost,
			LogLevel:         logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Cache: Cache{RedisURL: redisURL, TTL: cacheTTL},
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			RequestTimeout:    requestTimeout,
			RateLimitRPS:      rateLimitRPS,
			RateLimitBurst:    rateLimitBurst,
			TrustProxyHeaders: trustProxyHeaders,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// clientFlags parses the client flags and records the positional arguments
// left after them in rest.
//
// Flags:
//
//	-a server base URL
//	-timeout request timeout
//	-c/-config json file path with configs
//	-log-level zerolog level
func clientFlags(rest *[]string) flagParser {
	return func(args []string) (*StructuredConfig, error) {
		fs := flag.NewFlagSet("foodmap-client", flag.ContinueOnError)

		var address, jsonConfigPath, logLevel string
		var timeout time.Duration

		fs.StringVar(&address, "a", "", "Server base URL")
		fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 10s)")
		fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
		fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
		fs.StringVar(&logLevel, "log-level", "", "Log level")

		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		*rest = fs.Args()

		return &StructuredConfig{
			App:          App{LogLevel: logLevel},
			Adapter:      Adapter{HTTPAddress: address, RequestTimeout: timeout},
			JSONFilePath: jsonConfigPath,
		}, nil
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
