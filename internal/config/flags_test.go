package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:5000", want: NetAddress{Host: "localhost", Port: 5000}},
		{name: "ipv4", input: "0.0.0.0:80", want: NetAddress{Host: "0.0.0.0", Port: 80}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "port not a number", input: "localhost:http", expectError: true},
		{name: "port zero", input: "localhost:0", expectError: true},
		{name: "port too big", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:9000",
		"-d", "sqlite://foodmap.db",
		"-r", "redis://localhost:6379",
		"-cache-ttl", "10m",
		"-c", "/etc/foodmap.json",
		"-token-sign-key", "k",
		"-token-issuer", "iss",
		"-token-duration", "30m",
		"-hash-cost", "12",
		"-log-level", "warn",
		"-request-timeout", "5s",
		"-rate-limit-rps", "-1",
		"-rate-limit-burst", "3",
		"-trust-proxy-headers",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite://foodmap.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "redis://localhost:6379", cfg.Storage.Cache.RedisURL)
	assert.Equal(t, 10*time.Minute, cfg.Storage.Cache.TTL)
	assert.Equal(t, "/etc/foodmap.json", cfg.JSONFilePath)
	assert.Equal(t, App{
		TokenSignKey:     "k",
		TokenIssuer:      "iss",
		TokenDuration:    30 * time.Minute,
		PasswordHashCost: 12,
		LogLevel:         "warn",
	}, cfg.App)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, float64(-1), cfg.Server.RateLimitRPS)
	assert.Equal(t, 3, cfg.Server.RateLimitBurst)
	assert.True(t, cfg.Server.TrustProxyHeaders)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})
	require.Error(t, err)
}

func TestClientFlags_KeepsPositionalArgs(t *testing.T) {
	var rest []string
	cfg, err := clientFlags(&rest)([]string{"-a", "http://api:5000", "-timeout", "2s", "login", "-email", "a@x.com"})
	require.NoError(t, err)

	assert.Equal(t, "http://api:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"login", "-email", "a@x.com"}, rest)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", t.TempDir()+"/absent.env")
	t.Setenv("ADAPTER_ADDRESS", "")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "")
	t.Setenv("CONFIG", "")

	cfg, rest, err := GetClientConfig([]string{"current"})
	require.NoError(t, err)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, []string{"current"}, rest)
}
