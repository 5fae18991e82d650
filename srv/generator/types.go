package generator

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type ConversionState string

const (
	StateInitialized ConversionState = "initialized"
	StateConnected   ConversionState = "connected"
	StateConverting  ConversionState = "converting"
	StateCompleted   ConversionState = "completed"
	StateError       ConversionState = "error"
)

// ConversionProgress tracks one session's conversion job and pushes updates
// to the client over its WebSocket connection when one is attached.
type ConversionProgress struct {
	mu         sync.RWMutex
	SessionID  string
	State      ConversionState
	OutputPath string
	Pages      int
	Error      error
	WSConn     *websocket.Conn
	Done       chan bool
	StartTime  time.Time
	IsActive   bool
}

type WSMessage struct {
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Pages     int       `json:"pages,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// messageEmitter mirrors every update into the session history so clients
// reconnecting mid-conversion can catch up.
var messageEmitter func(sessionID string, msg WSMessage) error

func SetMessageEmitter(emit func(sessionID string, msg WSMessage) error) {
	messageEmitter = emit
}

func (p *ConversionProgress) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.WSConn != nil {
		p.WSConn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		p.WSConn.Close()
		p.WSConn = nil
	}
}

func (p *ConversionProgress) SendUpdate(message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := WSMessage{
		Type:      "update",
		Status:    string(p.State),
		Message:   message,
		Pages:     p.Pages,
		Timestamp: time.Now(),
	}

	// History first, so a dropped socket never loses the message.
	if messageEmitter != nil {
		if err := messageEmitter(p.SessionID, msg); err != nil {
			log.Printf("[Session %s] Failed to emit message to history: %v", p.SessionID, err)
		}
	}

	if p.WSConn != nil {
		if err := p.WSConn.WriteJSON(msg); err != nil {
			log.Printf("[Session %s] Failed to send WebSocket message: %v", p.SessionID, err)
			return err
		}
	}
	return nil
}

func (p *ConversionProgress) UpdateState(state ConversionState) {
	p.mu.Lock()
	p.State = state
	p.mu.Unlock()

	message := ""
	switch state {
	case StateConverting:
		message = "Converting your novel..."
	case StateCompleted:
		message = "Conversion completed!"
	case StateError:
		message = "Error converting novel"
	}
	p.SendUpdate(message)
}

func (p *ConversionProgress) SetConn(conn *websocket.Conn) {
	p.mu.Lock()
	p.WSConn = conn
	p.mu.Unlock()
}

func (p *ConversionProgress) SetError(err error) {
	p.mu.Lock()
	p.Error = err
	p.mu.Unlock()
}

func (p *ConversionProgress) SetActive(active bool) {
	p.mu.Lock()
	p.IsActive = active
	p.mu.Unlock()
}

func (p *ConversionProgress) GetState() ConversionState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.State
}

func (p *ConversionProgress) IsStillActive() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.IsActive
}

func (p *ConversionProgress) SetResult(path string, pages int) {
	p.mu.Lock()
	p.OutputPath = path
	p.Pages = pages
	p.mu.Unlock()
}

func (p *ConversionProgress) Result() (string, int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.OutputPath, p.Pages
}
