package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmeet/kmeet-join/internal/config"
	"github.com/kmeet/kmeet-join/internal/resolver"
	"github.com/kmeet/kmeet-join/internal/store"
)

func TestHandleNewRoom(t *testing.T) {
	rec := httptest.NewRecorder()
	handleNewRoom(rec, httptest.NewRequest(http.MethodGet, "/rooms/new", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Regexp(t, `^[a-z]{16}$`, body["room_id"])
}

func TestHandleNewRoom_RejectsPost(t *testing.T) {
	rec := httptest.NewRecorder()
	handleNewRoom(rec, httptest.NewRequest(http.MethodPost, "/rooms/new", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNewResolver_MemoryStoreIsNotACache(t *testing.T) {
	cfg := &config.Config{ResolverURL: "http://localhost", ResolverTimeout: time.Second, ResolverCacheTTL: time.Minute}

	r := newResolver(cfg, store.NewMemoryStore())

	assert.IsType(t, &resolver.HTTPResolver{}, r)
}
