package telnet

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeondigits/internal/config"
)

// SessionHandler runs the command loop for one connected client. It returns
// when the client quits, the connection fails or ctx is cancelled.
type SessionHandler interface {
	HandleSession(ctx context.Context, conn *Conn) error
}

// HandlerFunc adapts a function to SessionHandler.
type HandlerFunc func(ctx context.Context, conn *Conn) error

// HandleSession calls f.
func (f HandlerFunc) HandleSession(ctx context.Context, conn *Conn) error {
	return f(ctx, conn)
}

// Acceptor listens on a TCP address and runs a SessionHandler per connection.
type Acceptor struct {
	cfg     config.TelnetConfig
	handler SessionHandler
	logger  *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	ready    chan struct{}
	quit     chan struct{}
	stopped  bool

	wg     sync.WaitGroup
	active atomic.Int32
}

// NewAcceptor creates an Acceptor for cfg.Addr().
//
// Precondition: handler and logger must be non-nil.
func NewAcceptor(cfg config.TelnetConfig, handler SessionHandler, logger *zap.Logger) *Acceptor {
	if handler == nil {
		panic("telnet: NewAcceptor called with nil handler")
	}
	if logger == nil {
		panic("telnet: NewAcceptor called with nil logger")
	}
	return &Acceptor{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		ready:   make(chan struct{}),
		quit:    make(chan struct{}),
	}
}

// ListenAndServe binds the listener and accepts connections until Stop is
// called. It returns nil after a Stop and an error if binding fails.
//
// Precondition: ListenAndServe is called at most once per Acceptor.
func (a *Acceptor) ListenAndServe() error {
	ln, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.cfg.Addr(), err)
	}

	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		_ = ln.Close()
		return nil
	}
	a.listener = ln
	close(a.ready)
	a.mu.Unlock()

	a.logger.Info("telnet acceptor listening", zap.String("addr", ln.Addr().String()))

	var backoff time.Duration
	for {
		raw, err := ln.Accept()
		if err != nil {
			select {
			case <-a.quit:
				return nil
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			backoff = nextBackoff(backoff)
			a.logger.Error("accepting connection", zap.Error(err), zap.Duration("retry_in", backoff))
			time.Sleep(backoff)
			continue
		}
		backoff = 0

		a.wg.Add(1)
		go a.serve(raw)
	}
}

func nextBackoff(d time.Duration) time.Duration {
	if d == 0 {
		return 5 * time.Millisecond
	}
	if d *= 2; d > time.Second {
		d = time.Second
	}
	return d
}

// serve runs one connection to completion.
func (a *Acceptor) serve(raw net.Conn) {
	defer a.wg.Done()
	a.active.Add(1)
	defer a.active.Add(-1)

	start := time.Now()
	addr := raw.RemoteAddr().String()
	log := a.logger.With(zap.String("remote_addr", addr))
	log.Info("client connected")

	conn := NewConn(raw, a.cfg.ReadTimeout, a.cfg.WriteTimeout)
	defer conn.Close()

	if err := conn.Negotiate(); err != nil {
		log.Warn("telnet negotiation failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stop unblocks a session parked in ReadLine by closing its connection.
	go func() {
		select {
		case <-a.quit:
			cancel()
			_ = conn.Close()
		case <-ctx.Done():
		}
	}()

	err := a.handler.HandleSession(ctx, conn)
	fields := []zap.Field{zap.Duration("duration", time.Since(start))}
	if err != nil {
		log.Debug("session ended", append(fields, zap.Error(err))...)
		return
	}
	log.Info("session ended cleanly", fields...)
}

// Ready returns a channel that is closed once the listener is bound.
func (a *Acceptor) Ready() <-chan struct{} {
	return a.ready
}

// Stop closes the listener, ends every live session and waits for them.
// Stop is idempotent.
func (a *Acceptor) Stop() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.stopped = true
	close(a.quit)
	if a.listener != nil {
		_ = a.listener.Close()
	}
	a.mu.Unlock()

	a.wg.Wait()
	a.logger.Info("telnet acceptor stopped")
}

// Addr returns the bound address, or "" before the listener is bound.
func (a *Acceptor) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// IsRunning reports whether the listener is bound and not stopped.
func (a *Acceptor) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.listener != nil && !a.stopped
}

// ActiveSessions returns the number of connections currently being served.
func (a *Acceptor) ActiveSessions() int {
	return int(a.active.Load())
}
