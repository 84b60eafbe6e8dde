package shortener_test

import (
	"testing"

	"github.com/serroba/linkbox/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "absolute https", raw: "https://example.com/very/long/path?q=1#frag"},
		{name: "absolute with port", raw: "http://localhost:8080"},
		{name: "mailto", raw: "mailto:someone@example.com"},
		{name: "relative path", raw: "/docs/index.html"},
		{name: "relative with spaces", raw: "not a url with spaces and no scheme???"},
		{name: "empty", raw: "", wantErr: true},
		{name: "bad escape", raw: "https://example.com/%zz", wantErr: true},
		{name: "unclosed ipv6 host", raw: "http://[::1", wantErr: true},
		{name: "missing scheme", raw: "://example.com", wantErr: true},
		{name: "control character", raw: "https://example.com/\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := shortener.ParseTarget(tt.raw)
			if tt.wantErr {
				assert.Nil(t, u)
				assert.ErrorIs(t, err, shortener.ErrInvalidURL)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, u)
		})
	}
}
