package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/careervision/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestOpenRouterService_Complete(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{name: "content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"Keep learning Go."}}]}`, want: "Keep learning Go."},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: true},
		{name: "upstream error", status: http.StatusTooManyRequests, body: `{"error":{"message":"rate limited"}}`, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotAuth, gotBody string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/chat/completions", r.URL.Path)
				gotAuth = r.Header.Get("Authorization")
				b, _ := io.ReadAll(r.Body)
				gotBody = string(b)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			s := newOpenRouterService(&config.OpenRouterConfig{APIKey: "k", BaseURL: srv.URL, Model: "m", Timeout: time.Second})
			got, err := s.Complete(context.Background(), "what next?")

			assert.Equal(t, "Bearer k", gotAuth)
			assert.Equal(t, "m", gjson.Get(gotBody, "model").String())
			assert.Equal(t, "what next?", gjson.Get(gotBody, "messages.1.content").String())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
