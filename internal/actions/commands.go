// Package actions talks to the GitHub Actions runner: workflow commands on stdout
// and step outputs in the file named by GITHUB_OUTPUT.
package actions

import (
	"fmt"
	"io"
	"strings"
)

// Commands writes workflow commands. Each command occupies a whole line.
type Commands struct {
	w io.Writer
}

// NewCommands creates a Commands writing to w, normally os.Stdout.
func NewCommands(w io.Writer) *Commands {
	return &Commands{w: w}
}

// Group starts a collapsible log group.
func (c *Commands) Group(title string) {
	fmt.Fprintf(c.w, "::group::%s\n", escapeData(title))
}

// EndGroup closes the group opened by the last Group call.
func (c *Commands) EndGroup() {
	fmt.Fprintln(c.w, "::endgroup::")
}

// Error emits an error annotation shown on the workflow run summary.
func (c *Commands) Error(message string) {
	fmt.Fprintf(c.w, "::error::%s\n", escapeData(message))
}

var dataEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

func escapeData(s string) string {
	return dataEscaper.Replace(s)
}
