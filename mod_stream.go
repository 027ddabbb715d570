package blackhole

import (
	"bytes"
	"image/png"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// StreamModule serves traced frames as PNG blobs over a websocket, so a
// browser tab can watch a headless or remote instance.
type StreamModule struct {
	Addr     string
	Interval time.Duration
}

type StreamState struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool

	interval time.Duration
	lastSent time.Time
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (m StreamModule) Install(app *App, cmd *Commands) {
	interval := m.Interval
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	state := &StreamState{
		clients:  map[*websocket.Conn]bool{},
		interval: interval,
	}
	cmd.AddResources(state)

	logger := app.Logger()
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		state.handleClient(w, r, logger)
	})
	go func() {
		logger.Infof("frame stream listening on %s", m.Addr)
		if err := http.ListenAndServe(m.Addr, mux); err != nil {
			logger.Errorf("frame stream server: %v", err)
		}
	}()

	app.UseSystem(
		System(streamSystem).InStage(Finale),
	)
}

func (s *StreamState) handleClient(w http.ResponseWriter, r *http.Request, logger Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Errorf("websocket upgrade: %v", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	logger.Infof("stream client connected: %s", conn.RemoteAddr())

	// Drain control frames; drop the client when the read loop ends.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
			logger.Infof("stream client disconnected: %s", conn.RemoteAddr())
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// ClientCount reports connected viewers.
func (s *StreamState) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func streamSystem(s *StreamState, img *PresentImage, logger *DefaultLogger) {
	if img.Image == nil {
		return
	}
	if time.Since(s.lastSent) < s.interval {
		return
	}

	s.mu.Lock()
	if len(s.clients) == 0 {
		s.mu.Unlock()
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.Image); err != nil {
		s.mu.Unlock()
		logger.Errorf("stream encode: %v", err)
		return
	}

	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.BinaryMessage, buf.Bytes()); err != nil {
			delete(s.clients, conn)
			conn.Close()
		}
	}
	s.mu.Unlock()
	s.lastSent = time.Now()
}
