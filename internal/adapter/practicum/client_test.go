package practicum

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework-bot/internal/adapter/logging"
	"homework-bot/internal/domain/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	logger := logging.New(logging.Build(&buf, zerolog.DebugLevel))
	return New(srv.URL+"/api/user_api/homework_statuses/", "sometoken", 2*time.Second, logger), &buf
}

func TestFetchStatus_Success(t *testing.T) {
	var gotAuth, gotFrom, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1000198500}`))
	})

	resp, err := client.FetchStatus(context.Background(), 1000198000)
	require.NoError(t, err)

	assert.Equal(t, "OAuth sometoken", gotAuth)
	assert.Equal(t, "1000198000", gotFrom)
	assert.Equal(t, "/api/user_api/homework_statuses/", gotPath)

	body, ok := resp.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1000198500, body["current_date"])
	assert.Len(t, body["homeworks"], 1)
}

func TestFetchStatus_BadStatus(t *testing.T) {
	client, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"internal"}`))
	})

	_, err := client.FetchStatus(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrBadStatus)

	var apiErr *model.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "internal")
	assert.Contains(t, logs.String(), `"level":"error"`)
}

func TestFetchStatus_BadStatusHTMLBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html><head><style>body{color:red}</style></head><body><h1>502 Bad Gateway</h1><hr><center>nginx</center></body></html>`))
	})

	_, err := client.FetchStatus(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrBadStatus)
	assert.Contains(t, err.Error(), "502 Bad Gateway nginx")
	assert.NotContains(t, err.Error(), "<h1>")
	assert.NotContains(t, err.Error(), "color:red")
}

func TestFetchStatus_TransportError(t *testing.T) {
	// grab a free port and close it so the dial is refused
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	client := New("http://"+addr+"/", "sometoken", time.Second, logging.New(zerolog.Nop()))

	_, err = client.FetchStatus(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTransport)
	assert.Equal(t, model.KindTransport, model.KindOf(err))
}

func TestFetchStatus_CanceledContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchStatus(ctx, 0)
	assert.ErrorIs(t, err, model.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchStatus_NotJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	})

	_, err := client.FetchStatus(context.Background(), 0)
	assert.ErrorIs(t, err, model.ErrShape)
}

func TestFetchStatus_EmptyValueIsReturnedWithWarning(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{name: "empty object", body: `{}`, want: map[string]any{}},
		{name: "empty array", body: `[]`, want: []any{}},
		{name: "null", body: `null`, want: nil},
		{name: "false", body: `false`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := client.FetchStatus(context.Background(), 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp)
			assert.Contains(t, logs.String(), `"level":"warn"`)
		})
	}
}

func TestFetchStatus_NonEmptyValueHasNoWarning(t *testing.T) {
	client, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"homeworks":[],"current_date":1}`))
	})

	_, err := client.FetchStatus(context.Background(), 0)
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), `"level":"warn"`)
	assert.NotContains(t, logs.String(), "sometoken")
}
