package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/kmeet/kmeet-join/internal/config"
	"github.com/kmeet/kmeet-join/internal/handler"
	"github.com/kmeet/kmeet-join/internal/join"
	"github.com/kmeet/kmeet-join/internal/locale"
	"github.com/kmeet/kmeet-join/internal/profile"
	"github.com/kmeet/kmeet-join/internal/resolver"
	"github.com/kmeet/kmeet-join/internal/room"
	"github.com/kmeet/kmeet-join/internal/store"
	"github.com/kmeet/kmeet-join/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Screen hosts are native apps without a stable origin
	},
}

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := store.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	texts, err := locale.New(cfg.DefaultLocale)
	if err != nil {
		slog.Error("failed to build message catalog", "error", err)
		os.Exit(1)
	}

	hub := ws.NewHub()
	sm := join.NewManager()
	router := handler.NewRouter(sm, handler.Services{
		Preferences:    profile.NewPreferences(kv),
		Links:          room.NewLinkParser(cfg.BaseServerURL),
		Resolver:       newResolver(cfg, kv),
		Localizer:      texts,
		Post:           hub.Post,
		ResolveTimeout: cfg.ResolverTimeout,
	})

	hub.OnMessage = router.HandleMessage
	hub.OnDisconnect = router.HandleDisconnect

	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/rooms/new", handleNewRoom)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(hub, cfg, w, r)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", srv.Addr, "store", cfg.StoreBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newResolver builds the room code resolver, caching names when the store can hold them.
func newResolver(cfg *config.Config, kv store.KeyValueStore) resolver.Resolver {
	var r resolver.Resolver = resolver.NewHTTPResolver(cfg.ResolverURL, cfg.ResolverTimeout)
	if cache, ok := kv.(resolver.NameCache); ok && cfg.ResolverCacheTTL > 0 {
		r = resolver.NewCachedResolver(r, cache, cfg.ResolverCacheTTL)
	}
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func handleNewRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"room_id": room.NewRoomID()})
}

func handleWebSocket(hub *ws.Hub, cfg *config.Config, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	limit := rate.NewLimiter(rate.Limit(cfg.MessageRate), cfg.MessageBurst)
	client := ws.NewClient(uuid.NewString(), hub, conn, limit)
	if !hub.Connect(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
