package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/linesmerrill/cohort-site/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// viewer is one connected page. send holds at most the latest count.
type viewer struct {
	conn *websocket.Conn
	send chan models.UserCount
	done chan struct{}
}

// push replaces any undelivered count with c
func (v *viewer) push(c models.UserCount) {
	select {
	case <-v.send:
	default:
	}
	select {
	case v.send <- c:
	default:
	}
}

// LiveCount tracks the open viewer connections and tells every one of them the
// current total whenever it changes
type LiveCount struct {
	clients map[*viewer]struct{}
	mutex   sync.Mutex
}

// NewLiveCount returns an empty hub
func NewLiveCount() *LiveCount {
	return &LiveCount{clients: make(map[*viewer]struct{})}
}

// Count returns the number of open connections
func (h *LiveCount) Count() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// connect counts v and tells every viewer, v included
func (h *LiveCount) connect(v *viewer) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[v] = struct{}{}
	h.broadcastLocked()
	return len(h.clients)
}

// disconnect drops v once and tells the viewers left
func (h *LiveCount) disconnect(v *viewer) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[v]; ok {
		delete(h.clients, v)
		close(v.done)
		h.broadcastLocked()
	}
	return len(h.clients)
}

// broadcastLocked queues the current count on every client. Callers hold h.mutex,
// so counts are queued in the order the changes happened.
func (h *LiveCount) broadcastLocked() {
	msg := models.NewUserCount(len(h.clients))
	for v := range h.clients {
		v.push(msg)
	}
}

// ServeWS upgrades the request and keeps the viewer counted until the connection closes
func (h *LiveCount) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade error", "error", err)
		return
	}

	v := &viewer{
		conn: conn,
		send: make(chan models.UserCount, 1),
		done: make(chan struct{}),
	}
	n := h.connect(v)
	zap.S().Infow("viewer connected", "count", n)

	go h.writePump(v)
	h.readPump(v)

	n = h.disconnect(v)
	_ = conn.Close()
	zap.S().Infow("viewer disconnected", "count", n)
}

// readPump discards inbound frames and returns once the connection is gone
func (h *LiveCount) readPump(v *viewer) {
	v.conn.SetReadLimit(512)
	_ = v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error {
		return v.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := v.conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *LiveCount) writePump(v *viewer) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg := <-v.send:
			_ = v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteJSON(msg); err != nil {
				zap.S().Debugw("failed to send user count", "error", err)
				_ = v.conn.Close()
				return
			}
		case <-ticker.C:
			_ = v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = v.conn.Close()
				return
			}
		case <-v.done:
			return
		}
	}
}
