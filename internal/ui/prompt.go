package ui

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
)

const (
	InputPrompt   = "AI-Terminal > "
	ConfirmPrompt = "Do you want to run this command? (y/n): "
)

// ModelOptions lists the Gemini models offered by the configure wizard
var ModelOptions = []string{
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-2.5-flash-lite",
	"gemini-2.0-flash",
}

// ShowBanner prints the welcome message
func ShowBanner(w io.Writer, model string) {
	magenta := color.New(color.FgMagenta, color.Bold)
	magenta.Fprintf(w, "🔮 AI Terminal (powered by Gemini, %s)\n", model)
	fmt.Fprintln(w, "Type a natural language command (e.g., 'install python')")
	fmt.Fprintln(w, "Type 'exit' to quit.")
	fmt.Fprintln(w)
}

// ShowSuggestion displays the command proposed by the model
func ShowSuggestion(w io.Writer, command string) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(w, "🧠 Gemini suggests: `%s`\n", command)
}

// ShowError displays an error with a warning marker
func ShowError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(w, "⚠️ Error: %v\n", err)
}

// ShowWarning displays a warning message
func ShowWarning(w io.Writer, message string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(w, "  ⚠ %s\n", message)
}

// ShowSuccess displays a success message
func ShowSuccess(w io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(w, "✓ %s\n", message)
}

// ShowInfo displays an info message
func ShowInfo(w io.Writer, message string) {
	blue := color.New(color.FgBlue)
	blue.Fprintln(w, message)
}

// SelectModel prompts the user to pick a Gemini model
func SelectModel(current string) (string, error) {
	if current == "" {
		current = ModelOptions[0]
	}
	options := ModelOptions
	found := false
	for _, opt := range options {
		if opt == current {
			found = true
			break
		}
	}
	if !found {
		options = append([]string{current}, options...)
	}

	var model string
	prompt := &survey.Select{
		Message: "Select a Gemini model:",
		Options: options,
		Default: current,
	}

	if err := survey.AskOne(prompt, &model); err != nil {
		return "", err
	}

	return model, nil
}

// PromptYesNo asks a yes/no question
func PromptYesNo(message string, defaultValue bool) (bool, error) {
	var answer bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}

	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}

	return answer, nil
}
