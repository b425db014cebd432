package server_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/archmind/archmind/pkg/server"
)

func TestSessionStore_GetOrCreate(t *testing.T) {
	st := server.NewStore()

	a := st.GetOrCreate("")
	if a.ID == "" {
		t.Fatal("session id not assigned")
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("session creation time not stamped")
	}

	if got := st.GetOrCreate(a.ID); got != a {
		t.Fatal("known id must return the same session")
	}

	b := st.GetOrCreate("unknown-id")
	if b == a {
		t.Fatal("unknown id must create a fresh session")
	}
	if st.Len() != 2 {
		t.Fatalf("Len = %d, want 2", st.Len())
	}
}

func TestSession_ChatLifecycle(t *testing.T) {
	st := server.NewStore()
	sess := st.GetOrCreate("")

	if got := sess.ChatState(); got != server.ChatIdle {
		t.Fatalf("initial state = %v, want idle", got)
	}

	if err := sess.BeginChat(); err != nil {
		t.Fatalf("BeginChat: %v", err)
	}
	if got := sess.ChatState(); got != server.ChatAwaitingResponse {
		t.Fatalf("state = %v, want awaiting-response", got)
	}

	if err := sess.BeginChat(); !errors.Is(err, server.ErrChatBusy) {
		t.Fatalf("concurrent BeginChat = %v, want ErrChatBusy", err)
	}

	sess.EndChat(errors.New("upstream down"))
	if got := sess.ChatState(); got != server.ChatError {
		t.Fatalf("state = %v, want error", got)
	}

	// A new message clears the error state.
	if err := sess.BeginChat(); err != nil {
		t.Fatalf("BeginChat after error: %v", err)
	}
	sess.EndChat(nil)
	if got := sess.ChatState(); got != server.ChatIdle {
		t.Fatalf("state = %v, want idle", got)
	}
}

func TestSessionEndpoint(t *testing.T) {
	ts := newTestServer(&fakeGenerator{})
	defer ts.Close()

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/session", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["id"] != resp.Header.Get(server.SessionHeader) {
		t.Fatalf("body id %v != header id %v", body["id"], resp.Header.Get(server.SessionHeader))
	}
	if body["chatState"] != "idle" {
		t.Fatalf("chatState = %v", body["chatState"])
	}
	if _, ok := body["createdAt"].(float64); !ok {
		t.Fatalf("createdAt = %v, want epoch millis", body["createdAt"])
	}
}
