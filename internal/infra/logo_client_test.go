package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal valid PNG header bytes, enough for content-type sniffing
var pngPayload = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13}

func TestLogoClientFetchDataURL(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngPayload)
	}))
	defer srv.Close()

	c := NewLogoClient(srv.URL, time.Second)
	got, err := c.FetchDataURL(context.Background())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

	// second fetch is served from the cache
	again, err := c.FetchDataURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got, again)
	assert.Equal(t, 1, hits)
}

func TestLogoClientRejectsNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>not a logo</html>"))
	}))
	defer srv.Close()

	c := NewLogoClient(srv.URL, time.Second)
	_, err := c.FetchDataURL(context.Background())
	assert.Error(t, err)
}

func TestLogoClientUnconfigured(t *testing.T) {
	c := NewLogoClient("", time.Second)

	got, err := c.FetchDataURL(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	info := c.Info(context.Background())
	assert.False(t, info.Configured)
	assert.False(t, info.Exists)
}

func TestLogoClientInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngPayload)
	}))
	defer srv.Close()

	c := NewLogoClient(srv.URL, time.Second)
	info := c.Info(context.Background())

	assert.True(t, info.Configured)
	assert.True(t, info.Exists)
	assert.Equal(t, len(pngPayload), info.Size)
	assert.True(t, strings.HasPrefix(info.Preview, "data:image/png;base64,"))
	assert.Empty(t, info.Error)
}

func TestLogoClientInfoFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewLogoClient(srv.URL, time.Second)
	info := c.Info(context.Background())

	assert.True(t, info.Configured)
	assert.False(t, info.Exists)
	assert.NotEmpty(t, info.Error)
}
