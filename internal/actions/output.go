package actions

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultOutputFile is used when GITHUB_OUTPUT is unset, e.g. when running locally.
const DefaultOutputFile = "/tmp/github_output.txt"

// OutputWriter appends step outputs to the runner's output file.
type OutputWriter struct {
	path string
}

// NewOutputWriter returns a writer for path, falling back to DefaultOutputFile.
func NewOutputWriter(path string) *OutputWriter {
	if path == "" {
		path = DefaultOutputFile
	}
	return &OutputWriter{path: path}
}

// Path returns the file outputs are appended to.
func (o *OutputWriter) Path() string {
	return o.path
}

// Set appends name=value. Values spanning several lines are written in the
// runner's heredoc form with a random delimiter.
func (o *OutputWriter) Set(name, value string) error {
	f, err := os.OpenFile(o.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return goerr.Wrap(err, "failed to open output file", goerr.V("path", o.path))
	}
	defer f.Close()

	var line string
	if strings.ContainsAny(value, "\r\n") {
		delimiter := "ghadelimiter_" + uuid.NewString()
		line = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	} else {
		line = fmt.Sprintf("%s=%s\n", name, value)
	}

	if _, err := f.WriteString(line); err != nil {
		return goerr.Wrap(err, "failed to write output", goerr.V("path", o.path), goerr.V("name", name))
	}
	return nil
}
