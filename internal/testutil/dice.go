// Package testutil provides shared helpers for package tests.
package testutil

import (
	"fmt"
	"sync"
)

// ScriptedSource is a dice.Source that replays a fixed sequence of raw Intn
// results. It panics when a value is out of range for the requested n or the
// script runs out, so a test that miscounts draws fails loudly.
type ScriptedSource struct {
	mu     sync.Mutex
	values []int
	calls  []int
}

// NewScriptedSource returns a source that yields values in order.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: append([]int(nil), values...)}
}

// Intn returns the next scripted value.
//
// Precondition: n > 0; the next scripted value is in [0, n).
func (s *ScriptedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 {
		panic("testutil: Intn called with n <= 0")
	}
	if len(s.values) == 0 {
		panic(fmt.Sprintf("testutil: scripted source exhausted after %d draws (next n=%d)", len(s.calls), n))
	}
	v := s.values[0]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("testutil: scripted value %d out of range [0, %d) at draw %d", v, n, len(s.calls)))
	}
	s.values = s.values[1:]
	s.calls = append(s.calls, n)
	return v
}

// Push appends more values to the script.
func (s *ScriptedSource) Push(values ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, values...)
}

// Remaining returns the number of unconsumed values.
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// Calls returns the n argument of every draw made so far, in order.
func (s *ScriptedSource) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.calls...)
}

// ConstSource returns the same raw value for every draw, clamped to n-1.
type ConstSource struct{ Val int }

// Intn returns min(Val, n-1).
func (c ConstSource) Intn(n int) int {
	if n <= 0 {
		panic("testutil: Intn called with n <= 0")
	}
	if c.Val >= n {
		return n - 1
	}
	return c.Val
}
