// Package inspect parses suggested commands as shell source and reports
// constructs worth a second look before the user confirms them.
//
// Inspection is advisory. It never decides whether a command runs.
package inspect

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

var shells = []string{"sh", "bash", "zsh", "dash", "ksh", "fish"}

var destructive = []string{"rm", "rmdir", "dd", "mkfs", "shred", "truncate", "chmod", "chown", "kill", "killall", "shutdown", "reboot", "halt", "diskutil", "launchctl"}

// wrappers run their first non-flag argument as another program
var wrappers = []string{"sudo", "doas", "env", "nohup", "time", "xargs", "exec", "command"}

// Report describes the shell structure of a command
type Report struct {
	Statements  int // top-level statements plus && / || links
	Pipes       int
	PipeToShell bool
	Background  bool
	Redirects   []string // files written through > or >>
	Programs    []string // invoked program names, in order of appearance
	ParseErr    error
}

// Analyze parses command with the bash grammar and collects its structure
func Analyze(command string) Report {
	var r Report

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		r.ParseErr = err
		return r
	}

	r.Statements = len(file.Stmts)
	syntax.Walk(file, func(node syntax.Node) bool {
		switch n := node.(type) {
		case *syntax.Stmt:
			if n.Background {
				r.Background = true
			}
			for _, redir := range n.Redirs {
				if target, ok := writtenFile(redir); ok {
					r.Redirects = append(r.Redirects, target)
				}
			}
		case *syntax.BinaryCmd:
			switch n.Op {
			case syntax.AndStmt, syntax.OrStmt:
				r.Statements++
			case syntax.Pipe, syntax.PipeAll:
				r.Pipes++
				if call, ok := n.Y.Cmd.(*syntax.CallExpr); ok && slices.Contains(shells, programName(call.Args)) {
					r.PipeToShell = true
				}
			}
		case *syntax.CallExpr:
			r.Programs = append(r.Programs, callPrograms(n.Args)...)
		}
		return true
	})

	return r
}

// Warnings returns human-readable advisories, or nil when nothing stands out
func (r Report) Warnings() []string {
	if r.ParseErr != nil {
		return []string{fmt.Sprintf("suggestion is not valid shell syntax: %v", r.ParseErr)}
	}

	var warnings []string
	if r.Statements > 1 {
		warnings = append(warnings, fmt.Sprintf("suggestion chains %d commands", r.Statements))
	}
	if r.PipeToShell {
		warnings = append(warnings, "output is piped into a shell interpreter")
	}
	if slices.Contains(r.Programs, "sudo") || slices.Contains(r.Programs, "doas") {
		warnings = append(warnings, "runs with elevated privileges")
	}
	var risky []string
	for _, p := range r.Programs {
		if slices.Contains(destructive, p) && !slices.Contains(risky, p) {
			risky = append(risky, p)
		}
	}
	if len(risky) > 0 {
		warnings = append(warnings, "invokes destructive programs: "+strings.Join(risky, ", "))
	}
	if r.Background {
		warnings = append(warnings, "starts a background job")
	}
	if len(r.Redirects) > 0 {
		warnings = append(warnings, "writes to "+strings.Join(r.Redirects, ", "))
	}
	return warnings
}

func writtenFile(redir *syntax.Redirect) (string, bool) {
	switch redir.Op {
	case syntax.RdrOut, syntax.AppOut, syntax.RdrAll, syntax.AppAll, syntax.ClbOut:
	default:
		return "", false
	}
	if redir.Word == nil {
		return "", false
	}
	target := redir.Word.Lit()
	if target == "/dev/null" {
		return "", false
	}
	if target == "" {
		target = "a computed path"
	}
	return target, true
}

func programName(args []*syntax.Word) string {
	if len(args) == 0 {
		return ""
	}
	return path.Base(args[0].Lit())
}

func callPrograms(args []*syntax.Word) []string {
	var programs []string
	for len(args) > 0 {
		name := programName(args)
		if name == "" || name == "." {
			break
		}
		programs = append(programs, name)
		if !slices.Contains(wrappers, name) {
			break
		}
		// skip the wrapper's own flags and env assignments
		args = args[1:]
		for len(args) > 0 {
			lit := args[0].Lit()
			if !strings.HasPrefix(lit, "-") && !strings.Contains(lit, "=") {
				break
			}
			args = args[1:]
		}
	}
	return programs
}
