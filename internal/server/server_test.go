package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobu-k/100-math-sub004/internal/config"
	"github.com/nobu-k/100-math-sub004/internal/logging"
	"github.com/nobu-k/100-math-sub004/internal/server"
	"github.com/nobu-k/100-math-sub004/worksheet"
)

func newTestServer(t *testing.T, opts ...server.Option) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts = append([]server.Option{server.WithLogger(logging.New(logging.Config{Output: &logs}))}, opts...)
	ts := httptest.NewServer(server.New(worksheet.Default(), opts...))
	t.Cleanup(ts.Close)
	return ts, &logs
}

// noRedirect returns a client that surfaces redirects instead of following them.
func noRedirect() *http.Client {
	return &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
}

func get(t *testing.T, c *http.Client, u string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	resp, body := get(t, ts.Client(), ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", body)
}

func TestTopics(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	resp, body := get(t, ts.Client(), ts.URL+"/topics")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var topics []struct {
		ID    string   `json:"id"`
		Modes []string `json:"modes"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &topics))
	assert.Len(t, topics, 8)
	assert.Equal(t, "area", topics[0].ID)
}

func TestSheetMarkdown(t *testing.T) {
	t.Parallel()

	ts, logs := newTestServer(t)
	resp, body := get(t, ts.Client(), ts.URL+"/sheets/division?seed=2a&count=4&format=md")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/markdown; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "1. 14 ÷ 7 =")
	assert.NotContains(t, body, "## Answers")

	_, withKey := get(t, ts.Client(), ts.URL+"/sheets/division?seed=2a&count=4&format=md&answers=1")
	assert.Contains(t, withKey, "## Answers")
	assert.Contains(t, withKey, "2. 3 r 4")

	assert.Contains(t, logs.String(), "status=200")
}

func TestSheetDeterministic(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	u := ts.URL + "/sheets/gcdlcm?seed=deadbeef&mode=lcm"
	_, a := get(t, ts.Client(), u)
	_, b := get(t, ts.Client(), u)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "<html")
}

func TestSheetRedirectsToFreshSeed(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	for _, q := range []string{
		"?format=json",
		"?seed=zz&format=json",
		"?seed=123456789&mode=exact&format=json",
	} {
		resp, _ := get(t, noRedirect(), ts.URL+"/sheets/division"+q)
		require.Equal(t, http.StatusFound, resp.StatusCode, q)

		loc, err := url.Parse(resp.Header.Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "/sheets/division", loc.Path)
		assert.NotEmpty(t, loc.Query().Get("seed"))
		assert.Equal(t, "json", loc.Query().Get("format"))

		follow, body := get(t, ts.Client(), ts.URL+loc.String())
		require.Equal(t, http.StatusOK, follow.StatusCode, q)
		assert.Contains(t, body, `"topic": "division"`)
	}
}

func TestSheetErrors(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)

	resp, _ := get(t, ts.Client(), ts.URL+"/sheets/calculus?seed=1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, ts.Client(), ts.URL+"/sheets/area?seed=1&format=pdf")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSheetXLSX(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	resp, body := get(t, ts.Client(), ts.URL+"/sheets/factor?seed=ff&format=xlsx")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="factor-ff.xlsx"`, resp.Header.Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix([]byte(body), []byte("PK")), "xlsx is a zip archive")
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t, server.WithDefaults(config.Render{Format: "json", Answers: true}))
	_, body := get(t, ts.Client(), ts.URL+"/sheets/division?seed=2a&count=1")
	assert.Contains(t, body, `"answer": "5"`)

	_, body = get(t, ts.Client(), ts.URL+"/sheets/division?seed=2a&count=1&answers=no")
	assert.NotContains(t, body, `"answer"`)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := server.New(worksheet.Default())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe(ctx, config.Server{Addr: "127.0.0.1:0", ReadTimeout: time.Second, WriteTimeout: time.Second})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestWithLoggerNilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { server.WithLogger(nil) })
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	ts, logs := newTestServer(t)
	resp, _ := get(t, ts.Client(), ts.URL+"/healthz")
	id := resp.Header.Get(server.HeaderRequestID)
	assert.Len(t, id, 36, "a UUID")
	assert.Contains(t, logs.String(), "request_id="+id)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(server.HeaderRequestID, "trace-123")
	resp2, err := ts.Client().Do(req)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, "trace-123", resp2.Header.Get(server.HeaderRequestID))
}

func TestListenAndServeReportsBindError(t *testing.T) {
	t.Parallel()

	err := server.New(worksheet.Default()).ListenAndServe(context.Background(),
		config.Server{Addr: "127.0.0.1:99999", ReadTimeout: time.Second, WriteTimeout: time.Second})
	require.Error(t, err)
}
