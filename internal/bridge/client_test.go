package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-scraper-bridge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadListSuccess(t *testing.T) {
	var got map[string][]model.ListingSummary
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload_list", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "count": 1}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	res := c.UploadList(context.Background(), []model.ListingSummary{{Title: "Go工程师", SourceURL: "https://x/y"}})

	assert.True(t, res.Success)
	assert.Equal(t, KindNone, res.Kind)
	assert.Equal(t, float64(1), res.Data["count"])
	require.Len(t, got["jobs"], 1)
	assert.Equal(t, "https://x/y", got["jobs"][0].SourceURL)
}

func TestRelayServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "No jobs provided"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	res := c.Relay(context.Background(), "/upload_list", map[string]any{})

	//a 2xx body with success=false is a logical rejection, not a transport failure
	assert.False(t, res.Success)
	assert.Equal(t, KindNone, res.Kind)
	assert.NoError(t, res.Err)
}

func TestRelayNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	res := c.Relay(context.Background(), "/upload_detail", map[string]any{})

	assert.True(t, res.Success)
	assert.Nil(t, res.Data)
	assert.Equal(t, "plain text", res.Raw)
}

func TestRelayNetworkFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	res := c.Relay(context.Background(), "/get_next_url", map[string]any{})
	assert.False(t, res.Success)
	assert.Equal(t, KindNetwork, res.Kind)
	assert.Error(t, res.Err)

	//unreachable server
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	res = NewClient(deadURL, time.Second).Relay(context.Background(), "/get_next_url", map[string]any{})
	assert.False(t, res.Success)
	assert.Equal(t, KindNetwork, res.Kind)
}

func TestRelayChannelFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second)
	//a channel value can never be serialized; the message never leaves
	res := c.Relay(context.Background(), "/upload_detail", make(chan int))

	assert.False(t, res.Success)
	assert.Equal(t, KindChannel, res.Kind)
	assert.Error(t, res.Err)
}

func TestNextURL(t *testing.T) {
	queue := []string{"https://x/job/1"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if len(queue) == 0 {
			w.Write([]byte(`{"success": true, "url": null}`))
			return
		}
		url := queue[0]
		queue = queue[1:]
		json.NewEncoder(w).Encode(map[string]any{"success": true, "url": url})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	url, res := c.NextURL(context.Background())
	assert.True(t, res.Success)
	assert.Equal(t, "https://x/job/1", url)

	//exhausted queue: success with no url
	url, res = c.NextURL(context.Background())
	assert.True(t, res.Success)
	assert.Empty(t, url)
}
