package ui

import (
	"sync"
	"time"

	"github.com/zjgcainiao/HanwenPDF/srv/generator"
)

type MessageHistory struct {
	Messages []generator.WSMessage
	mu       sync.RWMutex
}

func (h *MessageHistory) AddMessage(msg generator.WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Messages = append(h.Messages, msg)
}

func (h *MessageHistory) GetMessages() []generator.WSMessage {
	h.mu.RLock()
	defer h.mu.RUnlock()
	messages := make([]generator.WSMessage, len(h.Messages))
	copy(messages, h.Messages)
	return messages
}

// LastTimestamp reports when the session last saw activity.
func (h *MessageHistory) LastTimestamp() (time.Time, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.Messages) == 0 {
		return time.Time{}, false
	}
	return h.Messages[len(h.Messages)-1].Timestamp, true
}
