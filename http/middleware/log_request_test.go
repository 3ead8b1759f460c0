package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/http/middleware"
	"github.com/switchbacklabs/switchback/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name      string
		target    string
		accept    string
		requestID string
		contains  []string
		excludes  []string
	}{
		{
			name:     "Zero-Value",
			target:   "https://example.com/",
			contains: []string{http.MethodGet, "/"},
		},
		{
			name:     "With-Accept",
			target:   "https://example.com/people",
			accept:   "application/json",
			contains: []string{http.MethodGet, "/people", "application/json"},
		},
		{
			name:     "With-Query-Params-Hid",
			target:   "https://example.com/people?param=true&password=hunter2",
			contains: []string{"/people", "param=true", "password=xxxxxxx"},
			excludes: []string{"hunter2"},
		},
		{
			name:      "With-Request-ID",
			target:    "https://example.com/people",
			requestID: "test-id",
			contains:  []string{"test-id", http.MethodGet, "/people"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			ls := logger.New(logger.WithLogger(log.New(b, "", 0)))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.accept != "" {
				r.Header.Set("Accept", tc.accept)
			}
			if tc.requestID != "" {
				r = r.Clone(context.WithValue(r.Context(), switchback.RequestIDKey, tc.requestID))
			}

			// Act
			middleware.LogRequest(ls)(NoopHandler()).ServeHTTP(w, r)

			// Assert
			actual := b.String()
			require.Contains(t, actual, "[INFO]")
			for _, s := range tc.contains {
				require.Contains(t, actual, s)
			}
			for _, s := range tc.excludes {
				require.NotContains(t, actual, s)
			}
		})
	}
}
