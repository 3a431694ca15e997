package progress

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// --- Run tests ---

func TestRunDisabledCallsFn(t *testing.T) {
	var buf bytes.Buffer
	got := Run(context.Background(), &buf, Options{}, func(context.Context) int { return 42 })
	if got != 42 {
		t.Errorf("Run = %d, want 42", got)
	}
	if buf.Len() != 0 {
		t.Errorf("disabled spinner wrote %q", buf.String())
	}
}

func TestRunEnabledReturnsResult(t *testing.T) {
	var buf bytes.Buffer
	got := Run(context.Background(), &buf, Options{Enabled: true}, func(context.Context) string {
		time.Sleep(50 * time.Millisecond)
		return "facts"
	})
	if got != "facts" {
		t.Errorf("Run = %q, want %q", got, "facts")
	}
}

func TestRunCancelledContextStillReturns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf bytes.Buffer
	got := Run(ctx, &buf, Options{Enabled: true}, func(context.Context) bool {
		cancel()
		return true
	})
	if !got {
		t.Error("Run should return fn's result after cancellation")
	}
}

// --- Model tests ---

func TestModelView(t *testing.T) {
	m := newModel(lipgloss.DefaultRenderer(), Options{})
	if v := m.View(); !strings.HasSuffix(v, " "+Message) {
		t.Errorf("View = %q, want suffix %q", v, Message)
	}

	next, cmd := m.Update(DoneEvent{})
	if cmd == nil {
		t.Error("DoneEvent should quit")
	}
	if v := next.View(); v != "" {
		t.Errorf("View after done = %q, want empty", v)
	}
}

func TestModelCustomText(t *testing.T) {
	m := newModel(lipgloss.DefaultRenderer(), Options{Text: "collecting"})
	if !strings.Contains(m.View(), "collecting") {
		t.Errorf("View = %q, want custom text", m.View())
	}
}

func TestModelTickAdvances(t *testing.T) {
	m := newModel(lipgloss.DefaultRenderer(), Options{})
	_, cmd := m.Update(m.spinner.Tick())
	if cmd == nil {
		t.Error("tick should schedule the next frame")
	}
	if _, ok := m.spinner.Tick().(spinner.TickMsg); !ok {
		t.Error("Tick should produce a spinner.TickMsg")
	}
}
