package agent

import "fmt"

// TargetOS is the operating system the generated commands are written for.
const TargetOS = "macOS"

// BuildPrompt wraps the user's request in the fixed instruction template.
// The request is embedded verbatim.
func BuildPrompt(request string) string {
	return fmt.Sprintf(`Translate the following natural language command into a safe %s shell command.
Only return the command, nothing else. For installing Python packages, use pip install <package_name>. If that does not work, use pip3 install <package_name> or python3 -m pip install <package_name> instead. Do NOT explain.
User input: %s
`, TargetOS, request)
}
