package blackhole

import (
	"image"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestStreamSkipsWithoutClients(t *testing.T) {
	s := &StreamState{
		clients:  map[*websocket.Conn]bool{},
		interval: time.Millisecond,
	}
	img := &PresentImage{Image: image.NewRGBA(image.Rect(0, 0, 4, 4))}
	logger := NewDefaultLogger("test", false)

	streamSystem(s, img, logger)
	assert.True(t, s.lastSent.IsZero(), "a clientless frame should not count as sent")
	assert.Equal(t, 0, s.ClientCount())
}

func TestStreamThrottles(t *testing.T) {
	s := &StreamState{
		clients:  map[*websocket.Conn]bool{},
		interval: time.Hour,
		lastSent: time.Now(),
	}
	img := &PresentImage{Image: image.NewRGBA(image.Rect(0, 0, 4, 4))}
	logger := NewDefaultLogger("test", false)

	// Inside the interval the system returns before touching the clients.
	streamSystem(s, img, logger)
	assert.Equal(t, 0, s.ClientCount())
}
