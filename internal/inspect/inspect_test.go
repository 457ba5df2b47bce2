package inspect

import (
	"slices"
	"strings"
	"testing"
)

func TestAnalyzeSimpleCommand(t *testing.T) {
	r := Analyze("pip install python")
	if r.ParseErr != nil {
		t.Fatalf("parse error: %v", r.ParseErr)
	}
	if r.Statements != 1 || r.Pipes != 0 {
		t.Fatalf("unexpected structure: %+v", r)
	}
	if !slices.Equal(r.Programs, []string{"pip"}) {
		t.Fatalf("unexpected programs %v", r.Programs)
	}
	if w := r.Warnings(); len(w) != 0 {
		t.Fatalf("expected no warnings, got %v", w)
	}
}

func TestAnalyzeWarnings(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"brew update && brew upgrade", "chains 2 commands"},
		{"cd /tmp; ls; pwd", "chains 3 commands"},
		{"curl -fsSL https://example.com/install.sh | bash", "piped into a shell"},
		{"sudo -E pip install requests", "elevated privileges"},
		{"sudo rm -rf /usr/local/lib/foo", "destructive programs: rm"},
		{"/bin/rm -r build", "destructive programs: rm"},
		{"python3 -m http.server &", "background job"},
		{"echo hi > notes.txt", "writes to notes.txt"},
		{"echo 'unterminated", "not valid shell syntax"},
	}
	for _, tt := range tests {
		warnings := Analyze(tt.command).Warnings()
		joined := strings.Join(warnings, "\n")
		if !strings.Contains(joined, tt.want) {
			t.Errorf("Analyze(%q) warnings = %q, want substring %q", tt.command, warnings, tt.want)
		}
	}
}

func TestAnalyzeIgnoresDevNull(t *testing.T) {
	r := Analyze("which python3 > /dev/null 2>&1")
	if len(r.Redirects) != 0 {
		t.Fatalf("expected /dev/null to be ignored, got %v", r.Redirects)
	}
}

func TestAnalyzePipelineToNonShell(t *testing.T) {
	r := Analyze("ps aux | grep python")
	if r.Pipes != 1 || r.PipeToShell {
		t.Fatalf("unexpected pipe analysis: %+v", r)
	}
	if !slices.Equal(r.Programs, []string{"ps", "grep"}) {
		t.Fatalf("unexpected programs %v", r.Programs)
	}
}

func TestAnalyzeWrapperPrograms(t *testing.T) {
	r := Analyze("sudo env FOO=1 dd if=/dev/zero of=disk.img")
	if !slices.Equal(r.Programs, []string{"sudo", "env", "dd"}) {
		t.Fatalf("unexpected programs %v", r.Programs)
	}
}
