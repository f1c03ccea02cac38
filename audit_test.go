package goSuite

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAuditDispatcherDisabled(t *testing.T) {
	d := newAuditDispatcher(AuditConfig{Enabled: false}, NewChannelSink(1))
	if d != nil {
		t.Fatal("disabled config must produce a nil dispatcher")
	}
	// nil dispatcher methods are safe no-ops.
	d.Emit(context.Background(), AuditEvent{})
	d.Close()
	if d.Dropped() != 0 {
		t.Fatal("nil dispatcher reported drops")
	}
}

func TestAuditDispatcherDeliversInOrder(t *testing.T) {
	sink := NewChannelSink(8)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 8, DropIfFull: true}, sink)

	for i := 0; i < 3; i++ {
		d.Emit(context.Background(), AuditEvent{EventType: "e", Metadata: map[string]string{
			"seq": string(rune('a' + i)),
		}})
	}
	d.Close()

	for i := 0; i < 3; i++ {
		select {
		case event := <-sink.Events():
			if got := event.Metadata["seq"]; got != string(rune('a'+i)) {
				t.Fatalf("event %d seq = %q", i, got)
			}
		default:
			t.Fatalf("event %d never delivered", i)
		}
	}
}

func TestAuditDispatcherDropsWhenFull(t *testing.T) {
	// A sink that never drains, with a buffer of one, forces drops.
	block := make(chan struct{})
	sink := blockingSink{release: block}
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, sink)

	for i := 0; i < 10; i++ {
		d.Emit(context.Background(), AuditEvent{EventType: "e"})
	}

	if d.Dropped() == 0 {
		t.Fatal("no events dropped despite a full buffer")
	}

	close(block)
	d.Close()
}

type blockingSink struct {
	release chan struct{}
}

func (s blockingSink) Emit(ctx context.Context, event AuditEvent) {
	<-s.release
}

func TestAuditDispatcherCloseIdempotent(t *testing.T) {
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, NoOpSink{})
	d.Close()
	d.Close()
	// Emits after close are dropped silently.
	d.Emit(context.Background(), AuditEvent{EventType: "late"})
}

func TestJSONWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		EventType: "token_refresh_success",
		Operation: "get_suite_token",
		Success:   true,
	})

	line := strings.TrimSpace(buf.String())
	var decoded AuditEvent
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("sink wrote invalid JSON: %v", err)
	}
	if decoded.EventType != "token_refresh_success" || !decoded.Success {
		t.Fatalf("decoded = %+v", decoded)
	}
}
