package handlers

import (
	"bufio"
	"fmt"
	"io"
)

// Console is a LineIO over a local reader and writer, used to play on a
// terminal without the Telnet server.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a Console reading lines from r and writing to w.
//
// Precondition: r and w must be non-nil.
func NewConsole(r io.Reader, w io.Writer) *Console {
	if r == nil || w == nil {
		panic("handlers: NewConsole called with nil reader or writer")
	}
	return &Console{in: bufio.NewScanner(r), out: w}
}

// ReadLine returns the next input line, or io.EOF when input ends.
func (c *Console) ReadLine() (string, error) {
	if c.in.Scan() {
		return c.in.Text(), nil
	}
	if err := c.in.Err(); err != nil {
		return "", fmt.Errorf("reading console: %w", err)
	}
	return "", io.EOF
}

// WriteLine writes text and a newline.
func (c *Console) WriteLine(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	return err
}

// WritePrompt writes prompt with no newline.
func (c *Console) WritePrompt(prompt string) error {
	_, err := io.WriteString(c.out, prompt)
	return err
}
