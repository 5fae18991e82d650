package ui

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zjgcainiao/HanwenPDF/convert"
	"github.com/zjgcainiao/HanwenPDF/srv/generator"
	"github.com/zjgcainiao/HanwenPDF/srv/util"
)

func (ui *ConverterUI) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, homePage)
}

// handleGenerate accepts pasted novel text, opens a session, and starts the
// conversion asynchronously. Clients follow progress over the WebSocket and
// fetch the PDF from /download once the job completes.
func (ui *ConverterUI) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	text := r.FormValue("text")
	if text == "" {
		http.Error(w, "Novel text is required", http.StatusBadRequest)
		return
	}
	mode := r.FormValue("mode")
	if mode == "" {
		mode = convert.DefaultMode
	}

	// Reuse a still-valid session when the client has one.
	var sessionID string
	if cookie, err := r.Cookie("session_id"); err == nil && isValidSession(cookie.Value) {
		sessionID = cookie.Value
	} else {
		sessionID = uuid.New().String()
	}

	w.Header().Set("X-Session-Id", sessionID)
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	progress := &generator.ConversionProgress{
		SessionID: sessionID,
		Done:      make(chan bool),
		StartTime: time.Now(),
		State:     generator.StateInitialized,
		IsActive:  true,
	}

	ui.sessionsM.Lock()
	ui.sessions[sessionID] = progress
	if _, exists := ui.msgHistory[sessionID]; !exists {
		ui.msgHistory[sessionID] = &MessageHistory{}
	}
	ui.sessionsM.Unlock()

	go func() {
		defer ui.cleanupSession(sessionID, progress)

		progress.UpdateState(generator.StateConverting)
		if err := generator.ConvertNovel(progress, text, mode); err != nil {
			util.ErrorLogger.Printf("[Session %s] Conversion failed: %v", sessionID, err)
			progress.SetError(err)
			progress.UpdateState(generator.StateError)
			return
		}
		progress.UpdateState(generator.StateCompleted)
	}()

	w.WriteHeader(http.StatusAccepted)
	fmt.Fprintf(w, `{"session_id":%q}`, sessionID)
}

func (ui *ConverterUI) handleDownload(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if !isValidSession(sessionID) {
		http.Error(w, "Invalid session", http.StatusBadRequest)
		return
	}

	progress := ui.findSession(sessionID)
	if progress == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	path, _ := progress.Result()
	if path == "" {
		http.Error(w, "Conversion not finished", http.StatusConflict)
		return
	}
	if _, err := os.Stat(path); err != nil {
		util.ErrorLogger.Printf("Download file missing: %s", path)
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=novel-%s.pdf", sessionID))
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
	util.InfoLogger.Printf("File downloaded: %s", path)
}

func (ui *ConverterUI) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if !isValidSession(sessionID) {
		http.Error(w, "Invalid session", http.StatusBadRequest)
		return
	}

	ui.sessionsM.RLock()
	history, ok := ui.msgHistory[sessionID]
	ui.sessionsM.RUnlock()
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, formatMessages(history.GetMessages()))
}

// findSession checks live sessions first, then the completed-job cache.
func (ui *ConverterUI) findSession(sessionID string) *generator.ConversionProgress {
	ui.sessionsM.RLock()
	progress, exists := ui.sessions[sessionID]
	ui.sessionsM.RUnlock()
	if exists {
		return progress
	}
	if cached, found := ui.cache.Get(sessionID); found {
		return cached.(*generator.ConversionProgress)
	}
	return nil
}
