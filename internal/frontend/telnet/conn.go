package telnet

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"time"
)

// Telnet command bytes (RFC 854) and the options this server negotiates.
const (
	IAC  byte = 255
	DONT byte = 254
	DO   byte = 253
	WONT byte = 252
	WILL byte = 251
	SB   byte = 250
	GA   byte = 249
	NOP  byte = 241
	SE   byte = 240

	OptEcho            byte = 1
	OptSuppressGoAhead byte = 3
	OptLinemode        byte = 34
)

// maxLineLength bounds a single command line; longer input is truncated.
const maxLineLength = 512

type iacState uint8

const (
	stateData iacState = iota
	stateCommand
	stateOption
	stateSub
	stateSubIAC
)

// iacFilter strips Telnet command sequences from a byte stream one byte at a
// time, so a sequence split across reads is still removed.
type iacFilter struct {
	state iacState
}

// feed consumes b and returns it with ok true when b is payload.
func (f *iacFilter) feed(b byte) (out byte, ok bool) {
	switch f.state {
	case stateCommand:
		switch b {
		case WILL, WONT, DO, DONT:
			f.state = stateOption
		case SB:
			f.state = stateSub
		case IAC:
			f.state = stateData
			return IAC, true
		default:
			f.state = stateData
		}
	case stateOption:
		f.state = stateData
	case stateSub:
		if b == IAC {
			f.state = stateSubIAC
		}
	case stateSubIAC:
		if b == SE {
			f.state = stateData
		} else {
			f.state = stateSub
		}
	default:
		if b == IAC {
			f.state = stateCommand
			return 0, false
		}
		return b, true
	}
	return 0, false
}

// FilterIAC removes Telnet command sequences from input. An escaped IAC IAC
// pair yields one literal 0xFF; a truncated trailing sequence is dropped.
//
// Postcondition: len(result) <= len(input).
func FilterIAC(input []byte) []byte {
	var f iacFilter
	out := make([]byte, 0, len(input))
	for _, b := range input {
		if v, ok := f.feed(b); ok {
			out = append(out, v)
		}
	}
	return out
}

// Conn is one Telnet client connection with line-oriented reads and
// serialized writes.
type Conn struct {
	raw    net.Conn
	reader *bufio.Reader
	filter iacFilter

	wmu          sync.Mutex
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewConn wraps raw. A zero timeout disables the corresponding deadline.
//
// Precondition: raw must be an open connection.
func NewConn(raw net.Conn, readTimeout, writeTimeout time.Duration) *Conn {
	return &Conn{
		raw:          raw,
		reader:       bufio.NewReader(raw),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// Negotiate offers to suppress go-ahead so clients send whole lines without GA.
func (c *Conn) Negotiate() error {
	return c.Write([]byte{IAC, WILL, OptSuppressGoAhead})
}

// ReadLine returns the next line without its terminator. CR, LF and CRLF all
// end a line; Telnet commands and control characters other than tab are
// discarded.
//
// Postcondition: On error the partial line read so far is returned with it.
func (c *Conn) ReadLine() (string, error) {
	if c.readTimeout > 0 {
		_ = c.raw.SetReadDeadline(time.Now().Add(c.readTimeout))
	}

	var line strings.Builder
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			return line.String(), err
		}
		v, ok := c.filter.feed(b)
		if !ok {
			continue
		}
		switch {
		case v == '\n':
			return line.String(), nil
		case v == '\r':
			if next, err := c.reader.Peek(1); err == nil && next[0] == '\n' {
				_, _ = c.reader.ReadByte()
			}
			return line.String(), nil
		case (v < 0x20 && v != '\t') || v >= 0x7f:
			continue
		}
		if line.Len() < maxLineLength {
			line.WriteByte(v)
		}
	}
}

// Write sends data to the client under the write deadline.
func (c *Conn) Write(data []byte) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	if c.writeTimeout > 0 {
		_ = c.raw.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	_, err := c.raw.Write(data)
	return err
}

// WriteLine sends text followed by CRLF.
func (c *Conn) WriteLine(text string) error {
	return c.Write([]byte(text + "\r\n"))
}

// WritePrompt sends text with no line terminator.
func (c *Conn) WritePrompt(prompt string) error {
	return c.Write([]byte(prompt))
}

// Close closes the underlying connection; pending reads fail.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// RemoteAddr returns the client's network address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}
