// Package ui provides the web interface for the novel conversion service.
package ui

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/patrickmn/go-cache"

	"github.com/zjgcainiao/HanwenPDF/srv/generator"
	"github.com/zjgcainiao/HanwenPDF/srv/util"
)

type ConverterUI struct {
	router      chi.Router
	sessions    map[string]*generator.ConversionProgress
	sessionsM   sync.RWMutex
	msgHistory  map[string]*MessageHistory
	cache       *cache.Cache
	historyFile string
}

func NewConverterUI() *ConverterUI {
	ui := &ConverterUI{
		router:      chi.NewRouter(),
		sessions:    make(map[string]*generator.ConversionProgress),
		msgHistory:  make(map[string]*MessageHistory),
		cache:       cache.New(24*time.Hour, 1*time.Hour),
		historyFile: "session_history.json",
	}
	generator.SetMessageEmitter(ui.emitMessage)
	ui.loadHistory()
	ui.setupRoutes()
	ui.startCleanup()
	return ui
}

func (ui *ConverterUI) setupRoutes() {
	ui.router.Use(middleware.RequestID)
	ui.router.Use(util.LoggingMiddleware)
	ui.router.Use(util.RecoveryMiddleware)
	ui.router.Use(httprate.LimitByIP(30, time.Minute))

	ui.router.Get("/", ui.handleHome)
	ui.router.Post("/generate", ui.handleGenerate)
	ui.router.Get("/ws", ui.handleWebSocket)
	ui.router.Get("/download/{sessionID}", ui.handleDownload)
	ui.router.Get("/history/{sessionID}", ui.handleHistory)
}

// Router exposes the configured handler for mounting.
func (ui *ConverterUI) Router() chi.Router { return ui.router }

func (ui *ConverterUI) startCleanup() {
	go func() {
		cleanupTicker := time.NewTicker(10 * time.Minute)
		saveTicker := time.NewTicker(5 * time.Minute)
		defer cleanupTicker.Stop()
		defer saveTicker.Stop()

		for {
			select {
			case <-cleanupTicker.C:
				ui.cleanupOldSessions()
			case <-saveTicker.C:
				ui.saveHistory()
			}
		}
	}()
}

func (ui *ConverterUI) cleanupOldSessions() {
	ui.sessionsM.Lock()
	defer ui.sessionsM.Unlock()

	changed := false
	for sessionID, history := range ui.msgHistory {
		last, ok := history.LastTimestamp()
		if ok && time.Since(last) > time.Hour {
			delete(ui.msgHistory, sessionID)
			changed = true
		}
	}
	if changed {
		ui.saveHistoryLocked()
	}
}

func (ui *ConverterUI) cleanupSession(sessionID string, progress *generator.ConversionProgress) {
	progress.SetActive(false)
	progress.Close()

	ui.sessionsM.Lock()
	delete(ui.sessions, sessionID)
	ui.sessionsM.Unlock()

	// Keep the finished job reachable for late downloads.
	ui.cache.Set(sessionID, progress, cache.DefaultExpiration)
}

func (ui *ConverterUI) emitMessage(sessionID string, msg generator.WSMessage) error {
	ui.sessionsM.Lock()
	history, ok := ui.msgHistory[sessionID]
	if !ok {
		history = &MessageHistory{}
		ui.msgHistory[sessionID] = history
	}
	ui.sessionsM.Unlock()

	history.AddMessage(msg)
	return nil
}

func (ui *ConverterUI) saveHistory() {
	ui.sessionsM.RLock()
	defer ui.sessionsM.RUnlock()
	ui.saveHistoryLocked()
}

func (ui *ConverterUI) saveHistoryLocked() {
	snapshot := make(map[string][]generator.WSMessage, len(ui.msgHistory))
	for id, h := range ui.msgHistory {
		snapshot[id] = h.GetMessages()
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		util.ErrorLogger.Printf("Failed to marshal session history: %v", err)
		return
	}
	if err := os.WriteFile(ui.historyFile, data, 0o644); err != nil {
		util.ErrorLogger.Printf("Failed to save session history: %v", err)
	}
}

func (ui *ConverterUI) loadHistory() {
	f, err := os.Open(ui.historyFile)
	if err != nil {
		return // first run
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		util.ErrorLogger.Printf("Failed to read session history: %v", err)
		return
	}
	var snapshot map[string][]generator.WSMessage
	if err := json.Unmarshal(data, &snapshot); err != nil {
		util.ErrorLogger.Printf("Failed to parse session history: %v", err)
		return
	}
	for id, msgs := range snapshot {
		ui.msgHistory[id] = &MessageHistory{Messages: msgs}
	}
}
