package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userdash/user-dashboard/internal/core/ports"
)

func TestClient_GetRelaysBodyAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("X-Upstream", "yes")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":1}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, map[string]string{"Content-Type": "application/json"}, 0)
	resp, err := c.Get(context.Background(), "/users")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `[{"id":1}]`, string(resp.Body))
	assert.Equal(t, "yes", resp.Header.Get("X-Upstream"))
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", http.StatusNotFound, `{"message":"User not found"}`, "User not found"},
		{"no message field", http.StatusNotFound, `{"detail":"nope"}`, "Not Found"},
		{"not json", http.StatusBadGateway, `<html>boom</html>`, "Bad Gateway"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, nil, 0)
			_, err := c.Get(context.Background(), "/whatever")
			require.Error(t, err)

			var ue *ports.UpstreamError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tc.status, ue.Status)
			assert.Equal(t, tc.wantMsg, ue.Message)
		})
	}
}

func TestClient_NetworkFailureHasNoStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately: connection refused

	c := NewClient(srv.URL, nil, time.Second)
	_, err := c.Get(context.Background(), "/users")
	require.Error(t, err)

	var ue *ports.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Zero(t, ue.Status)
	assert.NotEmpty(t, ue.Message)
}

func TestClient_PostEncodesBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, 0)
	resp, err := c.Post(context.Background(), "/users", map[string]string{"firstName": "Jane"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "Jane", got["firstName"])
}

func TestClient_InstancesAreIndependent(t *testing.T) {
	seen := make(map[string]string)
	newSrv := func(name string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen[name] = r.Header.Get("X-Source")
			_, _ = w.Write([]byte(`{}`))
		}))
	}
	a := newSrv("a")
	defer a.Close()
	b := newSrv("b")
	defer b.Close()

	headers := map[string]string{"X-Source": "proxy"}
	ca := NewClient(a.URL, headers, 0)
	headers["X-Source"] = "mutated-after-construction"
	cb := NewClient(b.URL, map[string]string{"X-Source": "sdk"}, 0)

	_, err := ca.Get(context.Background(), "/")
	require.NoError(t, err)
	_, err = cb.Get(context.Background(), "/")
	require.NoError(t, err)

	// The first client copied its header map at construction time.
	assert.Equal(t, "proxy", seen["a"])
	assert.Equal(t, "sdk", seen["b"])
}
