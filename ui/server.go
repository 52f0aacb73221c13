// Package ui exposes completion and symbol extraction as a small JSON API
// for browser editors, plus a playground page to try it.
package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/dhamidi/graphlet/completion"
	"github.com/dhamidi/graphlet/diagram"
	"github.com/tliron/commonlog"
)

//go:embed static
var embeddedFS embed.FS

const maxBodyBytes = 1 << 20

type Server struct {
	mux      *http.ServeMux
	staticFS fs.FS
	log      commonlog.Logger
}

func NewServer() *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		staticFS: mustSub(embeddedFS, "static"),
		log:      commonlog.GetLogger("graphlet.ui"),
	}

	s.mux.HandleFunc("POST /api/complete", s.handleComplete)
	s.mux.HandleFunc("POST /api/symbols", s.handleSymbols)
	s.mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("/api/", s.handleMethodNotAllowed)
	s.mux.HandleFunc("/healthz", s.handleMethodNotAllowed)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.log.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
}

type completeRequest struct {
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type symbolsRequest struct {
	Text string `json:"text"`
}

type symbolsResponse struct {
	Type    string       `json:"type"`
	Keyword string       `json:"keyword,omitempty"`
	Symbols []symbolJSON `json:"symbols"`
}

type symbolJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Line  int    `json:"line"`
	Start int    `json:"startColumn"`
	End   int    `json:"endColumn"`
}

type entryJSON struct {
	Label         string              `json:"label"`
	InsertText    string              `json:"insertText"`
	Category      completion.Category `json:"category"`
	Detail        string              `json:"detail"`
	Documentation string              `json:"documentation"`
}

type catalogResponse struct {
	Operators []entryJSON `json:"operators"`
	Shapes    []entryJSON `json:"shapes"`
	Keywords  []entryJSON `json:"keywords"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Line < 1 || req.Column < 1 {
		s.writeError(w, http.StatusBadRequest, errors.New("line and column are 1-based and must be positive"))
		return
	}
	s.writeJSON(w, http.StatusOK, completion.Complete(req.Text, req.Line, req.Column))
}

func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	var req symbolsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	kind := diagram.DetectType(req.Text)
	decls := diagram.ExtractDeclarations(req.Text)
	resp := symbolsResponse{
		Type:    kind.Label,
		Keyword: kind.Keyword,
		Symbols: make([]symbolJSON, len(decls)),
	}
	for i, d := range decls {
		resp.Symbols[i] = symbolJSON{
			ID:    d.ID,
			Label: d.Label,
			Line:  d.Span.Start.Line,
			Start: d.Span.Start.Column,
			End:   d.Span.End.Column,
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalogResponse{
		Operators: toEntryJSON(completion.Operators()),
		Shapes:    toEntryJSON(completion.Shapes()),
		Keywords:  toEntryJSON(completion.Keywords()),
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, s.staticFS, "index.html")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed for %s", r.Method, r.URL.Path))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorf("write response: %s", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.Infof("request failed with %d: %s", status, err)
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func toEntryJSON(entries []completion.Entry) []entryJSON {
	result := make([]entryJSON, len(entries))
	for i, e := range entries {
		result[i] = entryJSON(e)
	}
	return result
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
