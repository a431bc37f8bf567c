package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		handler    http.HandlerFunc
		wantStatus float64
		wantSize   float64
	}{
		{
			name:   "explicit status with body",
			method: http.MethodPost,
			path:   "/api/users/login",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte("bad"))
			},
			wantStatus: 400,
			wantSize:   3,
		},
		{
			name:   "implicit 200 on write",
			method: http.MethodGet,
			path:   "/api/users/current",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
				_, _ = w.Write([]byte("!!"))
			},
			wantStatus: 200,
			wantSize:   4,
		},
		{
			name:       "handler writes nothing",
			method:     http.MethodGet,
			path:       "/",
			handler:    func(http.ResponseWriter, *http.Request) {},
			wantStatus: 200,
			wantSize:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.NewLogger("test", logger.WithWriter(&buf))}

			rr := httptest.NewRecorder()
			h.withTraceID(h.withLogging(tt.handler)).ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
			assert.Equal(t, rr.Header().Get(traceIDHeader), entry["trace_id"])
		})
	}
}
