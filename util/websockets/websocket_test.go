package websockets

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// Exercises the subscribe write path concurrently with broadcasts so the
// race detector covers the shared PageID field.
func TestResubscribeDuringBroadcast(t *testing.T) {
	manager := NewWebSocketManager()
	go manager.Run()

	srv := httptest.NewServer(http.HandlerFunc(manager.HandleConnections))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?page_id=page-a"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// Give the handler time to register the client before broadcasting.
	time.Sleep(50 * time.Millisecond)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for i := 0; i < 100; i++ {
			page := "page-a"
			if i%2 == 1 {
				page = "page-b"
			}
			if err := conn.WriteJSON(Message{Type: MsgTypeSubscribe, PageID: page}); err != nil {
				return
			}
		}
	}()

	payload := []byte(`{"type":"comment_update"}`)
	for i := 0; i < 100; i++ {
		manager.BroadcastCommentUpdate("page-a", payload)
		manager.BroadcastCommentUpdate("page-b", payload)
	}
	<-writerDone

	manager.BroadcastCommentUpdate("page-a", payload)
	manager.BroadcastCommentUpdate("page-b", payload)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, msg, err := conn.ReadMessage(); err != nil {
		t.Fatalf("expected a comment update, got %v", err)
	} else if !strings.Contains(string(msg), MsgTypeCommentUpdate) {
		t.Fatalf("unexpected message %s", msg)
	}
}

func TestBroadcastSkipsOtherPages(t *testing.T) {
	manager := NewWebSocketManager()
	go manager.Run()

	srv := httptest.NewServer(http.HandlerFunc(manager.HandleConnections))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?page_id=page-a"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)

	manager.BroadcastCommentUpdate("page-b", []byte(`{"page":"b"}`))

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, msg, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected no message for another page, got %s", msg)
	}
}
