package feed

import (
	"bufio"
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestBroadcasterPublish(t *testing.T) {
	b := NewBroadcaster()
	idA, a := b.Subscribe()
	_, c := b.Subscribe()

	if got := b.Publish(NewEvent("post", "one")); got != 2 {
		t.Fatalf("Publish() delivered to %d clients, want 2", got)
	}
	for _, ch := range []<-chan Event{a, c} {
		if ev := <-ch; ev.Data != "one" || ev.Name != "post" {
			t.Errorf("event = %+v", ev)
		}
	}

	b.Unsubscribe(idA)
	if _, open := <-a; open {
		t.Error("channel of an unsubscribed client is still open")
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1", b.Count())
	}
	b.Unsubscribe(idA) // second call is a no-op
}

func TestBroadcasterDropsWhenFull(t *testing.T) {
	b := NewBroadcaster()
	_, ch := b.Subscribe()

	for i := 0; i < clientBuffer; i++ {
		if b.Publish(NewEvent("", "x")) != 1 {
			t.Fatalf("event %d was not delivered", i)
		}
	}
	if got := b.Publish(NewEvent("", "overflow")); got != 0 {
		t.Errorf("Publish() to a full client delivered %d, want 0", got)
	}
	if len(ch) != clientBuffer {
		t.Errorf("buffered = %d, want %d", len(ch), clientBuffer)
	}
}

func TestBroadcasterClose(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe()

	b.Close()
	if _, open := <-ch; open {
		t.Error("channel still open after Close")
	}
	b.Unsubscribe(id) // must not close the channel twice

	_, late := b.Subscribe()
	if _, open := <-late; open {
		t.Error("subscribing after Close returned an open channel")
	}
	if b.Count() != 0 {
		t.Errorf("Count() = %d, want 0", b.Count())
	}
}

func TestEventWriteTo(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"named", NewEvent("post", `{"id":1}`), "event: post\ndata: {\"id\":1}\n\n"},
		{"unnamed", NewEvent("", "hi"), "data: hi\n\n"},
		{"multi-line", NewEvent("", "a\nb"), "data: a\ndata: b\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if _, err := tt.event.WriteTo(&buf); err != nil {
				t.Fatalf("WriteTo() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteTo() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestHandleStream(t *testing.T) {
	b := NewBroadcaster()
	srv := httptest.NewServer(HandleStream(b))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}

	deadline := time.Now().Add(2 * time.Second)
	for b.Count() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never subscribed")
		}
		time.Sleep(10 * time.Millisecond)
	}
	b.Publish(NewEvent("post", "hello"))

	reader := bufio.NewReader(resp.Body)
	var lines []string
	for len(lines) < 2 {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		lines = append(lines, strings.TrimRight(line, "\n"))
	}
	if lines[0] != "event: post" || lines[1] != "data: hello" {
		t.Errorf("stream = %q", lines)
	}
}
