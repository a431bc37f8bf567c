package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient("http://localhost:5000", 3*time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:5000", client.BaseURL)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_DefaultTimeout(t *testing.T) {
	client := NewHTTPClient("http://localhost:5000", 0)
	assert.Equal(t, defaultClientTimeout, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	first := NewHTTPClient("http://a", time.Second)
	second := NewHTTPClient("http://b", time.Second)

	assert.NotSame(t, first.Client, second.Client)
}
