package resolver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *HTTPResolver {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPResolver(server.URL+"/", time.Second)
}

func TestHTTPResolver_Success(t *testing.T) {
	var gotPath string
	r := newTestAPI(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"success","data":{"name":"roomA"}}`))
	})

	name, err := r.RoomNameFromCode(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Equal(t, "roomA", name)
	assert.Equal(t, "/1/kmeet/rooms/code/1234567890", gotPath)
}

func TestHTTPResolver_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `{"result":"error"}`},
		{"server error", http.StatusInternalServerError, ``},
		{"error result", http.StatusOK, `{"result":"error","data":{"name":"x"}}`},
		{"empty name", http.StatusOK, `{"result":"success","data":{"name":""}}`},
		{"garbage", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestAPI(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			name, err := r.RoomNameFromCode(context.Background(), "1234567890")

			assert.Empty(t, name)
			assert.ErrorIs(t, err, ErrCodeNotFound)
		})
	}
}

func TestHTTPResolver_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, err := NewHTTPResolver(server.URL, time.Second).RoomNameFromCode(context.Background(), "1234567890")

	assert.ErrorIs(t, err, ErrCodeNotFound)
}

type stubResolver struct {
	mu    sync.Mutex
	calls int
	name  string
	err   error
}

func (s *stubResolver) RoomNameFromCode(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.name, s.err
}

type memoryCache struct {
	names   map[string]string
	readErr error
}

func (m *memoryCache) GetRoomName(_ context.Context, code string) (string, bool, error) {
	if m.readErr != nil {
		return "", false, m.readErr
	}
	name, ok := m.names[code]
	return name, ok, nil
}

func (m *memoryCache) SetRoomName(_ context.Context, code, name string, _ time.Duration) error {
	m.names[code] = name
	return nil
}

func TestCachedResolver_CachesSuccess(t *testing.T) {
	next := &stubResolver{name: "roomA"}
	cache := &memoryCache{names: map[string]string{}}
	r := NewCachedResolver(next, cache, time.Minute)

	for range 3 {
		name, err := r.RoomNameFromCode(context.Background(), "1234567890")
		require.NoError(t, err)
		assert.Equal(t, "roomA", name)
	}

	assert.Equal(t, 1, next.calls)
}

func TestCachedResolver_DoesNotCacheFailure(t *testing.T) {
	next := &stubResolver{err: ErrCodeNotFound}
	cache := &memoryCache{names: map[string]string{}}
	r := NewCachedResolver(next, cache, time.Minute)

	_, err := r.RoomNameFromCode(context.Background(), "1234567890")
	assert.ErrorIs(t, err, ErrCodeNotFound)
	_, err = r.RoomNameFromCode(context.Background(), "1234567890")
	assert.ErrorIs(t, err, ErrCodeNotFound)

	assert.Equal(t, 2, next.calls)
	assert.Empty(t, cache.names)
}

func TestCachedResolver_CacheErrorFallsThrough(t *testing.T) {
	next := &stubResolver{name: "roomA"}
	cache := &memoryCache{names: map[string]string{}, readErr: errors.New("down")}
	r := NewCachedResolver(next, cache, time.Minute)

	name, err := r.RoomNameFromCode(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Equal(t, "roomA", name)
}

func TestFuture_ThenRunsThroughPost(t *testing.T) {
	f := Start(context.Background(), &stubResolver{name: "roomA"}, "1234567890")

	posted := make(chan func(), 1)
	results := make(chan string, 1)
	f.Then(func(fn func()) { posted <- fn }, func(name string, err error) {
		assert.NoError(t, err)
		results <- name
	})

	select {
	case fn := <-posted:
		assert.Empty(t, results, "continuation must not run before it is posted")
		fn()
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for continuation")
	}

	assert.Equal(t, "roomA", <-results)
}

func TestFuture_Result(t *testing.T) {
	f := Start(context.Background(), &stubResolver{err: ErrCodeNotFound}, "1234567890")

	<-f.Done()
	name, err := f.Result()

	assert.Empty(t, name)
	assert.ErrorIs(t, err, ErrCodeNotFound)
}
