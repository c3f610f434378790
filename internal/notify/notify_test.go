package notify

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalNotify(t *testing.T) {
	buf := &bytes.Buffer{}
	n := NewTerminal(buf)

	n.Notify(KindError, "Email taken")

	out := buf.String()
	if !strings.Contains(out, "Email taken") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}

	r.Notify(KindError, "Network error")
	r.Notify(KindWarn, "proceeding without identity")

	events := r.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != KindError || events[0].Message != "Network error" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[1].Kind != KindWarn {
		t.Errorf("unexpected second event: %+v", events[1])
	}
}

func TestKindString(t *testing.T) {
	if KindError.String() != "error" || KindWarn.String() != "warn" || KindInfo.String() != "info" {
		t.Error("unexpected Kind string values")
	}
}
