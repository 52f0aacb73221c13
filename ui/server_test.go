package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/graphlet/completion"
)

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestComplete(t *testing.T) {
	s := NewServer()
	text := "graph TD\n    A[Start] --> B\n    Ne-"
	body, _ := json.Marshal(completeRequest{Text: text, Line: 3, Column: 7})

	rec := do(t, s, http.MethodPost, "/api/complete", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got completion.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := completion.Complete(text, 3, 7)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("response differs from completion.Complete:\ngot  %+v\nwant %+v", got.Candidates[:3], want.Candidates[:3])
	}
	if got.Candidates[0].Category != completion.CategoryNewSymbol || got.Candidates[0].Label != "Ne" {
		t.Errorf("first candidate = %+v, want new symbol Ne", got.Candidates[0])
	}
}

func TestSymbols(t *testing.T) {
	s := NewServer()
	rec := do(t, s, http.MethodPost, "/api/symbols", `{"text":"sequenceDiagram\n    Alice->>Bob: Hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	var got symbolsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Type != "Sequence" {
		t.Errorf("type = %q, want Sequence", got.Type)
	}
	var ids []string
	for _, sym := range got.Symbols {
		ids = append(ids, sym.ID)
	}
	if want := []string{"sequenceDiagram", "Alice", "Bob"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestCatalog(t *testing.T) {
	rec := do(t, NewServer(), http.MethodGet, "/api/catalog", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got catalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Operators) != 7 || len(got.Shapes) != 11 || len(got.Keywords) != 28 {
		t.Errorf("catalog sizes = %d/%d/%d, want 7/11/28", len(got.Operators), len(got.Shapes), len(got.Keywords))
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"malformed body", http.MethodPost, "/api/complete", `{"text":`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/api/symbols", `{"source":"graph TD"}`, http.StatusBadRequest},
		{"zero line", http.MethodPost, "/api/complete", `{"text":"graph TD","line":0,"column":1}`, http.StatusBadRequest},
		{"get complete", http.MethodGet, "/api/complete", "", http.StatusMethodNotAllowed},
		{"post catalog", http.MethodPost, "/api/catalog", "", http.StatusMethodNotAllowed},
		{"delete healthz", http.MethodDelete, "/healthz", "", http.StatusMethodNotAllowed},
	}
	s := NewServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			var got errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Error == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestHealthAndIndex(t *testing.T) {
	s := NewServer()
	if rec := do(t, s, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("GET /healthz = %d, want 200", rec.Code)
	}
	rec := do(t, s, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "graphlet playground") {
		t.Error("index page does not contain its title")
	}
}
