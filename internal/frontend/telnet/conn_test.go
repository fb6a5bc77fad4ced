package telnet

import (
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFilterIAC(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"no commands", []byte("hello"), []byte("hello")},
		{"will", []byte{IAC, WILL, OptEcho, 'h', 'i'}, []byte("hi")},
		{"wont", []byte{IAC, WONT, OptSuppressGoAhead, 'o', 'k'}, []byte("ok")},
		{"do mid-stream", []byte{'a', IAC, DO, OptLinemode, 'b'}, []byte("ab")},
		{"dont only", []byte{IAC, DONT, OptEcho}, []byte{}},
		{"subnegotiation", []byte{IAC, SB, 24, 0, 'x', 't', IAC, SE, 'z'}, []byte("z")},
		{"escaped iac", []byte{'a', IAC, IAC, 'b'}, []byte{'a', IAC, 'b'}},
		{"nop", []byte{'x', IAC, NOP, 'y'}, []byte("xy")},
		{"truncated", []byte{'n', IAC, WILL}, []byte("n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterIAC(tt.input))
		})
	}
}

func TestPropertyFilterIAC_NoIACBytesPassThrough(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.SliceOf(rapid.ByteRange(0, 254)).Draw(t, "input")
		assert.Equal(t, append([]byte{}, input...), FilterIAC(input))
	})
}

func TestPropertyFilterIAC_OutputNeverLongerThanInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.SliceOf(rapid.Byte()).Draw(t, "input")
		assert.LessOrEqual(t, len(FilterIAC(input)), len(input))
	})
}

func TestPropertyFilterIAC_SplitMatchesWhole(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.SliceOf(rapid.Byte()).Draw(t, "input")
		cut := rapid.IntRange(0, len(input)).Draw(t, "cut")

		var f iacFilter
		var got []byte
		for _, part := range [][]byte{input[:cut], input[cut:]} {
			for _, b := range part {
				if v, ok := f.feed(b); ok {
					got = append(got, v)
				}
			}
		}
		assert.Equal(t, FilterIAC(input), append([]byte{}, got...))
	})
}

// pipeConn returns a Conn on one end of an in-memory pipe and the raw peer.
func pipeConn(t *testing.T) (*Conn, net.Conn) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() {
		server.Close()
		client.Close()
	})
	return NewConn(server, time.Second, time.Second), client
}

func TestConn_ReadLine_Terminators(t *testing.T) {
	conn, client := pipeConn(t)
	go func() {
		_, _ = client.Write([]byte("north\r\nfight\nsearch\rlook\r\n"))
	}()

	for _, want := range []string{"north", "fight", "search", "look"} {
		line, err := conn.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
}

func TestConn_ReadLine_FiltersCommandsAndControls(t *testing.T) {
	conn, client := pipeConn(t)
	go func() {
		_, _ = client.Write([]byte{IAC, DO, OptSuppressGoAhead, 'f', 0x07, 'l', 'e', 0x7f, 'e', '\n'})
	}()

	line, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "flee", line)
}

func TestConn_ReadLine_Truncates(t *testing.T) {
	conn, client := pipeConn(t)
	go func() {
		_, _ = client.Write([]byte(strings.Repeat("x", maxLineLength+40) + "\n"))
	}()

	line, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Len(t, line, maxLineLength)
}

func TestConn_ReadLine_EOFReturnsPartial(t *testing.T) {
	conn, client := pipeConn(t)
	go func() {
		_, _ = client.Write([]byte("qui"))
		client.Close()
	}()

	line, err := conn.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "qui", line)
}

func TestConn_WriteLineAndPrompt(t *testing.T) {
	conn, client := pipeConn(t)
	done := make(chan []byte)
	go func() {
		b, _ := io.ReadAll(client)
		done <- b
	}()

	require.NoError(t, conn.WriteLine("You enter room (0, 1)."))
	require.NoError(t, conn.WritePrompt("> "))
	require.NoError(t, conn.Close())

	assert.Equal(t, "You enter room (0, 1).\r\n> ", string(<-done))
}
