package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kataras/iris/v12"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, apiKey string) *iris.Application {
	gw := &Gateway{
		Config:     Config{APIKey: apiKey},
		Transcoder: NewTranscoder(NewMetrics()),
	}
	app := newWebApp(gw)
	require.NoError(t, app.Build())
	return app
}

func serve(app *iris.Application, method, path, body string, auth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.SetBasicAuth("gateway", "secret")
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestWebAuth(t *testing.T) {
	app := newTestApp(t, "secret")

	t.Run("health is public", func(t *testing.T) {
		rec := serve(app, http.MethodGet, "/health", "", false)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("missing credentials", func(t *testing.T) {
		assert := assert.New(t)
		rec := serve(app, http.MethodGet, "/api/tables", "", false)
		assert.Equal(http.StatusUnauthorized, rec.Code)
		assert.Contains(rec.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tables", nil)
		req.SetBasicAuth("gateway", "guess")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("key not configured", func(t *testing.T) {
		rec := serve(newTestApp(t, ""), http.MethodGet, "/api/tables", "", true)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWebTranscode(t *testing.T) {
	app := newTestApp(t, "secret")

	t.Run("tables", func(t *testing.T) {
		rec := serve(app, http.MethodGet, "/api/tables", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		var info []TableInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Len(t, info, 14)
		assert.Contains(t, rec.Body.String(), `"name":"turkish"`)
	})

	t.Run("encode", func(t *testing.T) {
		assert := assert.New(t)
		rec := serve(app, http.MethodPost, "/api/encode", `{"text":"Hello"}`, true)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp EncodeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal("c8329bfd06", resp.Payload)
		assert.Equal(5, resp.Septets)
	})

	t.Run("encode with named tables", func(t *testing.T) {
		rec := serve(app, http.MethodPost, "/api/encode", `{"text":"Ğ","tables":{"locking":"turkish","single":"default"}}`, true)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp EncodeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "0b", resp.Payload)
	})

	t.Run("decode", func(t *testing.T) {
		rec := serve(app, http.MethodPost, "/api/decode", `{"payload":"c8329bfd06"}`, true)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp DecodeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Hello", resp.Text)
	})

	t.Run("seek", func(t *testing.T) {
		rec := serve(app, http.MethodPost, "/api/seek", `{"text":"Ğüzel"}`, true)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp SeekResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "turkish", resp.Tables.Locking.String())
	})

	t.Run("split", func(t *testing.T) {
		rec := serve(app, http.MethodPost, "/api/split", `{"text":"`+strings.Repeat("a", 200)+`","ref":1}`, true)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp SplitResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Segments, 2)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(app, http.MethodPost, "/api/encode", `{"text":`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown table name", func(t *testing.T) {
		rec := serve(app, http.MethodPost, "/api/encode", `{"text":"x","tables":{"locking":"klingon"}}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad payload", func(t *testing.T) {
		assert := assert.New(t)
		rec := serve(app, http.MethodPost, "/api/decode", `{"payload":"zz"}`, true)
		assert.Equal(http.StatusBadRequest, rec.Code)
		assert.Contains(rec.Body.String(), "not hex")
	})

	t.Run("stores disabled", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve(app, http.MethodGet, "/api/usage", "", true).Code)
		assert.Equal(t, http.StatusNotFound, serve(app, http.MethodGet, "/api/lossy?limit=5", "", true).Code)
	})
}
