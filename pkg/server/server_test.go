package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/archmind/archmind/pkg/aisync"
	"github.com/archmind/archmind/pkg/design"
	"github.com/archmind/archmind/pkg/server"
)

type fakeGenerator struct {
	jsonText string
	text     string

	// When set, GenerateJSON blocks: it signals started and waits for
	// release. Used to hold a chat request in flight.
	started chan struct{}
	release chan struct{}
}

func (f *fakeGenerator) GenerateText(ctx context.Context, system, user string) (string, error) {
	return f.text, nil
}

func (f *fakeGenerator) GenerateJSON(ctx context.Context, system, user string, _ *jsonschema.Schema) (string, error) {
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
	return f.jsonText, nil
}

func newTestServerWithHub(gen aisync.Generator) (*server.Server, *httptest.Server) {
	w := design.NewWorkspace()
	svc := &aisync.Service{
		Gen: gen,
		IsBuiltinLinkType: func(id string) bool {
			return w.Registry.IsBuiltin(id)
		},
		ColorFor: w.Catalog.ColorFor,
	}
	srv := server.New(svc, nil)
	return srv, httptest.NewServer(srv.Handler())
}

func newTestServer(gen aisync.Generator) *httptest.Server {
	_, ts := newTestServerWithHub(gen)
	return ts
}

func doJSON(t *testing.T, method, url, sessionID, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if sessionID != "" {
		req.Header.Set(server.SessionHeader, sessionID)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, m
}

func TestChat_MissingMessage(t *testing.T) {
	ts := newTestServer(&fakeGenerator{})
	defer ts.Close()

	resp, m := doJSON(t, http.MethodPost, ts.URL+"/api/ai/chat", "", `{"message": "  "}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if m["error"] == "" {
		t.Fatal("error body missing")
	}
}

func TestChat_GenerateAppliesToSession(t *testing.T) {
	gen := &fakeGenerator{jsonText: `{
		"parts": [{"type": "api-gateway", "name": "GW"}, {"type": "postgresql", "name": "DB"}],
		"connections": [{"from": 0, "to": 1, "linkType": "data-flow", "color": "#3b82f6"}],
		"description": "done"
	}`}
	ts := newTestServer(gen)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/ai/chat",
		strings.NewReader(`{"message": "design a url shortener"}`))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	sessionID := resp.Header.Get(server.SessionHeader)
	if sessionID == "" {
		t.Fatal("no session id on response")
	}

	// The same session must now hold the generated design.
	getReq, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/design", nil)
	getReq.Header.Set(server.SessionHeader, sessionID)
	getResp, err := http.DefaultClient.Do(getReq)
	if err != nil {
		t.Fatal(err)
	}
	defer getResp.Body.Close()
	var doc struct {
		Parts       []design.Part       `json:"parts"`
		Connections []design.Connection `json:"connections"`
	}
	if err := json.NewDecoder(getResp.Body).Decode(&doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Parts) != 2 || len(doc.Connections) != 1 {
		t.Fatalf("design = %d parts, %d connections", len(doc.Parts), len(doc.Connections))
	}
	if doc.Connections[0].From != 1 || doc.Connections[0].To != 2 {
		t.Fatalf("endpoints = %d→%d, want 1→2", doc.Connections[0].From, doc.Connections[0].To)
	}
}

func TestChat_SingleInFlight(t *testing.T) {
	gen := &fakeGenerator{
		jsonText: `{"parts": [], "connections": [], "description": "d"}`,
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	ts := newTestServer(gen)
	defer ts.Close()

	// Establish a session first so both requests share it.
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/design/sample", "", "")
	sessionID := resp.Header.Get(server.SessionHeader)

	errCh := make(chan error, 1)
	go func() {
		req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/ai/chat",
			strings.NewReader(`{"message": "design a robot"}`))
		req.Header.Set(server.SessionHeader, sessionID)
		r, err := http.DefaultClient.Do(req)
		if err == nil {
			r.Body.Close()
		}
		errCh <- err
	}()

	select {
	case <-gen.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first chat request never reached the generator")
	}

	second, _ := doJSON(t, http.MethodPost, ts.URL+"/api/ai/chat", sessionID,
		`{"message": "design another robot"}`)
	if second.StatusCode != http.StatusConflict {
		t.Fatalf("second request status = %d, want 409", second.StatusCode)
	}

	close(gen.release)
	if err := <-errCh; err != nil {
		t.Fatalf("first request failed: %v", err)
	}
}

func TestDesign_PutThenUndo(t *testing.T) {
	ts := newTestServer(&fakeGenerator{})
	defer ts.Close()

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/design/sample", "", "")
	sessionID := resp.Header.Get(server.SessionHeader)

	putResp, putBody := doJSON(t, http.MethodPut, ts.URL+"/api/design", sessionID,
		`{"parts": [{"id": 1, "type": "motor", "name": "M"}], "connections": []}`)
	if putResp.StatusCode != http.StatusOK {
		t.Fatalf("put status = %d", putResp.StatusCode)
	}
	if putBody["parts"].(float64) != 1 {
		t.Fatalf("put body = %v", putBody)
	}

	undoResp, undoBody := doJSON(t, http.MethodPost, ts.URL+"/api/design/undo", sessionID, "")
	if undoResp.StatusCode != http.StatusOK || undoBody["ok"] != true {
		t.Fatalf("undo = %d %v", undoResp.StatusCode, undoBody)
	}

	// Back to the sample design.
	getReq, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/design", nil)
	getReq.Header.Set(server.SessionHeader, sessionID)
	getResp, err := http.DefaultClient.Do(getReq)
	if err != nil {
		t.Fatal(err)
	}
	defer getResp.Body.Close()
	var doc struct {
		Parts []design.Part `json:"parts"`
	}
	if err := json.NewDecoder(getResp.Body).Decode(&doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Parts) != 10 {
		t.Fatalf("parts after undo = %d, want 10", len(doc.Parts))
	}
}

func TestArrange_EmptyDesignIsNoOp(t *testing.T) {
	ts := newTestServer(&fakeGenerator{})
	defer ts.Close()

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/design/arrange", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["arranged"] != false {
		t.Fatalf("arranged = %v, want false", body["arranged"])
	}
	if body["nextMode"] != "hierarchical" {
		t.Fatalf("nextMode = %v, want hierarchical (no advance on empty design)", body["nextMode"])
	}
}

func TestChat_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(&fakeGenerator{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/ai/chat")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}

func TestExportBOM_Headers(t *testing.T) {
	ts := newTestServer(&fakeGenerator{})
	defer ts.Close()

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/design/sample", "", "")
	sessionID := resp.Header.Get(server.SessionHeader)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/export/bom.csv", nil)
	req.Header.Set(server.SessionHeader, sessionID)
	bomResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer bomResp.Body.Close()
	if ct := bomResp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if cd := bomResp.Header.Get("Content-Disposition"); !strings.Contains(cd, "bill-of-materials.csv") {
		t.Fatalf("Content-Disposition = %q", cd)
	}
}
