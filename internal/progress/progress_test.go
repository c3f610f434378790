package progress

import (
	"bytes"
	"testing"
	"time"
)

func TestNewIndicator(t *testing.T) {
	buf := &bytes.Buffer{}
	ind := NewIndicator(Config{Writer: buf, Message: "loading machines"})

	if ind == nil {
		t.Fatal("NewIndicator() returned nil")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	buf := &bytes.Buffer{}
	ind := NewIndicator(Config{Writer: buf, Message: "loading"})

	ind.Start()
	time.Sleep(10 * time.Millisecond)
	ind.Stop()
	ind.Stop() // must not panic on a closed channel
}

func TestCISuppressesSpinner(t *testing.T) {
	buf := &bytes.Buffer{}
	ind := NewIndicator(Config{Writer: buf, Message: "loading", IsCI: true})

	ind.Start()
	time.Sleep(150 * time.Millisecond)
	ind.Stop()

	if buf.Len() != 0 {
		t.Errorf("expected no spinner output in CI mode, got %q", buf.String())
	}
}
