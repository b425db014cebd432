// Package server exposes design sessions over HTTP: a JSON API for the
// editor front end, report exports, and a WebSocket event feed.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/archmind/archmind/pkg/aisync"
	"github.com/archmind/archmind/pkg/design"
	"github.com/archmind/archmind/pkg/design/codec"
)

// SessionHeader carries the session id on requests and responses. A request
// without one (or with an unknown id) gets a fresh session; the client
// echoes the header back on subsequent calls.
const SessionHeader = "X-Session-Id"

// Server hosts design sessions behind the HTTP API.
type Server struct {
	AI       *aisync.Service
	Sessions *Store
	Hub      *Hub
	Log      *slog.Logger
}

// New creates a server over the given AI service.
func New(ai *aisync.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		AI:       ai,
		Sessions: NewStore(),
		Hub:      NewHub(),
		Log:      log,
	}
}

// Handler builds the API route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/session", s.handleSession)
	mux.HandleFunc("/api/ai/chat", s.handleChat)
	mux.HandleFunc("/api/design", s.handleDesign)
	mux.HandleFunc("/api/design/sample", s.handleSample)
	mux.HandleFunc("/api/design/arrange", s.handleArrange)
	mux.HandleFunc("/api/design/undo", s.handleUndo)
	mux.HandleFunc("/api/design/redo", s.handleRedo)
	mux.HandleFunc("/api/export/design.json", s.handleExportDesign)
	mux.HandleFunc("/api/export/bom.csv", s.handleExportBOM)
	mux.HandleFunc("/api/export/architecture.md", s.handleExportArchDoc)
	mux.HandleFunc("/api/events", s.Hub.handleEvents)
	return mux
}

// ListenAndServe runs the API on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.Log.Info("api server listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// session resolves the request's session and stamps its id on the response.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *Session {
	sess := s.Sessions.GetOrCreate(r.Header.Get(SessionHeader))
	w.Header().Set(SessionHeader, sess.ID)
	return sess
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"id":        sess.ID,
		"chatState": sess.ChatState().String(),
		"createdAt": sess.CreatedAt,
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)

	var req aisync.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The server's copy of the design is authoritative; a request without
	// explicit context chats about the session's current design.
	if req.Parts == nil {
		sess.Do(func(ws *design.Workspace) {
			req.Parts = ws.Graph.Parts()
			req.Connections = ws.Graph.Connections()
		})
	}

	if err := sess.BeginChat(); err != nil {
		s.respondError(w, http.StatusConflict, err.Error())
		return
	}
	resp, err := s.AI.Chat(r.Context(), req)
	sess.EndChat(err)
	if err != nil {
		s.Log.Warn("chat failed", "session", sess.ID, "error", err)
		s.respondError(w, chatStatus(err), err.Error())
		return
	}

	if resp.DesignData != nil {
		sess.Do(func(ws *design.Workspace) {
			ws.ApplySync(resp.DesignData.Parts, resp.DesignData.Connections, resp.DesignData.CustomLinkTypes)
		})
		s.Hub.Broadcast(Event{Type: EventDesignChanged, SessionID: sess.ID})
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDesign(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	switch r.Method {
	case http.MethodGet:
		var doc codec.Document
		sess.Do(func(ws *design.Workspace) { doc = codec.FromWorkspace(ws) })
		w.Header().Set("Content-Type", "application/json")
		if err := codec.EncodeDocument(w, doc); err != nil {
			s.Log.Error("encode design", "error", err)
		}

	case http.MethodPut:
		doc, err := codec.DecodeDocument(r.Body)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		sess.Do(func(ws *design.Workspace) {
			ws.Load(doc.Parts, doc.Connections, doc.CustomLinkTypes, doc.CustomComponents)
		})
		s.Hub.Broadcast(Event{Type: EventDesignChanged, SessionID: sess.ID})
		s.respondJSON(w, http.StatusOK, map[string]int{
			"parts":       len(doc.Parts),
			"connections": len(doc.Connections),
		})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)
	sess.Do(func(ws *design.Workspace) { ws.LoadSample() })
	s.Hub.Broadcast(Event{Type: EventDesignChanged, SessionID: sess.ID})
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "sample design loaded"})
}

func (s *Server) handleArrange(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)
	var arranged bool
	var next design.LayoutMode
	sess.Do(func(ws *design.Workspace) {
		arranged = ws.AutoArrange()
		next = ws.LayoutMode()
	})
	if arranged {
		s.Hub.Broadcast(Event{Type: EventDesignChanged, SessionID: sess.ID})
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"arranged": arranged,
		"nextMode": string(next),
	})
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.handleHistoryStep(w, r, (*design.Workspace).Undo)
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	s.handleHistoryStep(w, r, (*design.Workspace).Redo)
}

func (s *Server) handleHistoryStep(w http.ResponseWriter, r *http.Request, step func(*design.Workspace) bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(w, r)
	var ok bool
	sess.Do(func(ws *design.Workspace) { ok = step(ws) })
	if ok {
		s.Hub.Broadcast(Event{Type: EventDesignChanged, SessionID: sess.ID})
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"ok": ok})
}

func (s *Server) handleExportDesign(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	var doc codec.Document
	sess.Do(func(ws *design.Workspace) { doc = codec.FromWorkspace(ws) })
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+codec.DefaultFilename)
	if err := codec.EncodeDocument(w, doc); err != nil {
		s.Log.Error("export design", "error", err)
	}
}

func (s *Server) handleExportBOM(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	var parts []design.Part
	sess.Do(func(ws *design.Workspace) { parts = ws.Graph.Parts() })
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=bill-of-materials.csv")
	if err := codec.WriteBOM(w, parts); err != nil {
		s.Log.Error("export bom", "error", err)
	}
}

func (s *Server) handleExportArchDoc(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	var (
		parts    []design.Part
		conns    []design.Connection
		registry *design.Registry
	)
	sess.Do(func(ws *design.Workspace) {
		parts = ws.Graph.Parts()
		conns = ws.Graph.Connections()
		registry = ws.Registry
	})
	w.Header().Set("Content-Type", "text/markdown")
	w.Header().Set("Content-Disposition", "attachment; filename=architecture.md")
	if err := codec.WriteArchitectureDoc(w, parts, conns, registry); err != nil {
		s.Log.Error("export architecture doc", "error", err)
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Error("encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

// chatStatus maps AI pipeline failures onto HTTP statuses: bad input is the
// caller's fault, credential and quota problems get their dedicated codes,
// everything else is a plain server error.
func chatStatus(err error) int {
	var se *aisync.Error
	if errors.As(err, &se) {
		switch se.Kind {
		case aisync.KindInput:
			return http.StatusBadRequest
		case aisync.KindCredential:
			return http.StatusUnauthorized
		case aisync.KindQuota:
			return http.StatusTooManyRequests
		}
	}
	return http.StatusInternalServerError
}
