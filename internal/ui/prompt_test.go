package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestShowSuggestion(t *testing.T) {
	var buf bytes.Buffer
	ShowSuggestion(&buf, "pip install python")
	if got := buf.String(); got != "🧠 Gemini suggests: `pip install python`\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestShowError(t *testing.T) {
	var buf bytes.Buffer
	ShowError(&buf, errors.New("quota exceeded"))
	if got := buf.String(); got != "⚠️ Error: quota exceeded\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestShowBanner(t *testing.T) {
	var buf bytes.Buffer
	ShowBanner(&buf, "gemini-2.5-flash")
	want := "🔮 AI Terminal (powered by Gemini, gemini-2.5-flash)\n" +
		"Type a natural language command (e.g., 'install python')\n" +
		"Type 'exit' to quit.\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected banner %q", got)
	}
}
