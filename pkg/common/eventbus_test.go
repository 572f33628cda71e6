package common

import (
	"testing"
)

func TestEventBus_On_Dispatch(t *testing.T) {
	eb := NewEventBus()

	var got []Event
	eb.On(EventAppReady, func(e Event) {
		got = append(got, e)
	})

	eb.Emit(Event{Type: EventAppReady, Data: map[string]any{"addr": "127.0.0.1:1420"}})
	eb.Emit(Event{Type: EventAppShutdown})

	if len(got) != 1 {
		t.Fatalf("expected 1 handled event, got %d", len(got))
	}
	if got[0].Data["addr"] != "127.0.0.1:1420" {
		t.Errorf("unexpected event data: %v", got[0].Data)
	}
}

func TestEventBus_Subscribe_ReceivesAllTypes(t *testing.T) {
	eb := NewEventBus()

	id, ch := eb.Subscribe()
	defer eb.Unsubscribe(id)

	eb.Emit(Event{Type: EventAppReady})
	eb.Emit(Event{Type: EventCommandInvoked, Data: map[string]any{"command": "greet"}})

	first := <-ch
	if first.Type != EventAppReady {
		t.Errorf("expected %s, got %s", EventAppReady, first.Type)
	}
	second := <-ch
	if second.Type != EventCommandInvoked {
		t.Errorf("expected %s, got %s", EventCommandInvoked, second.Type)
	}
	if second.Data["command"] != "greet" {
		t.Errorf("unexpected event data: %v", second.Data)
	}
}

func TestEventBus_Unsubscribe_ClosesChannel(t *testing.T) {
	eb := NewEventBus()

	id, ch := eb.Subscribe()
	eb.Unsubscribe(id)

	if _, ok := <-ch; ok {
		t.Error("expected channel to be closed after unsubscribe")
	}

	// Unsubscribing twice is a no-op
	eb.Unsubscribe(id)
}

func TestEventBus_Emit_DropsWhenSubscriberFull(t *testing.T) {
	eb := NewEventBus()

	id, ch := eb.Subscribe()
	defer eb.Unsubscribe(id)

	// Nobody reading: Emit must not block even past the buffer size
	for i := 0; i < 200; i++ {
		eb.Emit(Event{Type: EventCommandInvoked})
	}

	if len(ch) > cap(ch) {
		t.Fatalf("channel over capacity: %d > %d", len(ch), cap(ch))
	}
}
