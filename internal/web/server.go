package web

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/gorilla/mux"
)

//go:embed static
var static embed.FS

// staticFS re-roots the embedded tree so the page serves at /.
var staticFS = func() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}()

// Socket pacing and limits.
const (
	tickInterval = 40 * time.Millisecond
	writeWait    = 10 * time.Second
	maxMsgSize   = 16 * 1024
)

// NewRouter wires the viewer routes: the embedded page, a health probe,
// and the websocket endpoint.
func NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/ws", handleSocket)

	r.PathPrefix("/").Handler(http.FileServer(http.FS(staticFS))).Methods("GET")

	return r
}

// handleSocket upgrades the connection and runs one session until the
// client goes away.
func handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// The viewer page is served by this process; only local origins
		// may open the socket.
		OriginPatterns: []string{"localhost:*", "127.0.0.1:*"},
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	session, err := NewSession()
	if err != nil {
		slog.Error("session init", "error", err)
		_ = conn.Close(websocket.StatusInternalError, "session init failed")
		return
	}
	slog.Info("viewer connected", "session", session.ID)

	serveSession(r.Context(), conn, session)
	slog.Info("viewer disconnected", "session", session.ID)
}

// serveSession owns the session on one goroutine: control messages arrive
// through a channel fed by the read pump, updates go out on a fixed tick.
func serveSession(ctx context.Context, conn *websocket.Conn, session *Session) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer conn.Close(websocket.StatusNormalClosure, "")

	conn.SetReadLimit(maxMsgSize)
	controls := make(chan ControlMessage)

	// Read pump: decode and forward; any read error ends the session.
	go func() {
		defer cancel()
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			msg, err := DecodeControl(data)
			if err != nil {
				slog.Debug("control rejected", "session", session.ID, "error", err)
				continue
			}
			select {
			case controls <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-controls:
			if err := session.Apply(msg); err != nil {
				slog.Debug("control failed", "session", session.ID, "error", err)
			}
		case <-ticker.C:
			update, ok := session.Tick()
			if !ok {
				continue
			}
			if err := writeUpdate(ctx, conn, update); err != nil {
				return
			}
		}
	}
}

// writeUpdate sends one JSON update with a bounded write deadline.
func writeUpdate(ctx context.Context, conn *websocket.Conn, update StateUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()

	return conn.Write(writeCtx, websocket.MessageText, data)
}
