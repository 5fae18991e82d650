package ui

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zjgcainiao/HanwenPDF/srv/generator"
	"github.com/zjgcainiao/HanwenPDF/srv/util"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The service fronts a single-origin UI.
		return true
	},
}

func (ui *ConverterUI) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "No session found", http.StatusBadRequest)
		return
	}

	sessionID := cookie.Value
	if !isValidSession(sessionID) {
		http.Error(w, "Invalid session", http.StatusBadRequest)
		return
	}

	progress := ui.findSession(sessionID)
	if progress == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		util.ErrorLogger.Printf("[Session %s] WebSocket upgrade failed: %v", sessionID, err)
		return
	}

	progress.SetConn(conn)
	progress.UpdateState(generator.StateConnected)

	// Replay what the client missed before it connected.
	ui.sessionsM.RLock()
	history, ok := ui.msgHistory[sessionID]
	ui.sessionsM.RUnlock()
	if ok {
		for _, msg := range history.GetMessages() {
			if err := conn.WriteJSON(msg); err != nil {
				break
			}
		}
	}

	// Hold the connection open until the client leaves; updates arrive via
	// ConversionProgress.SendUpdate.
	go func() {
		defer progress.Close()
		conn.SetReadDeadline(time.Now().Add(30 * time.Minute))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
