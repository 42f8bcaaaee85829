package utils

import (
	"bufio"
	"fmt"
	"io"
)

// ReadPasswordLine reads a single password line from r.
// The trailing newline (and carriage return, if present) is stripped,
// so both Unix and Windows line endings are handled. A final line
// without a newline is accepted as well.
// Returns an error if r cannot be read or no password is provided.
func ReadPasswordLine(r io.Reader) ([]byte, error) {
	reader := bufio.NewReader(r)

	line, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	// Strip the line terminator.
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}

	if len(line) == 0 {
		return nil, fmt.Errorf("no password provided")
	}

	return line, nil
}
