package server

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// blockingService runs until Stop and records the stop order.
type blockingService struct {
	name    string
	started chan struct{}
	quit    chan struct{}
	once    sync.Once
	order   *stopOrder
}

type stopOrder struct {
	mu    sync.Mutex
	names []string
}

func (o *stopOrder) add(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.names = append(o.names, name)
}

func newBlocking(name string, order *stopOrder) *blockingService {
	return &blockingService{name: name, started: make(chan struct{}), quit: make(chan struct{}), order: order}
}

func (b *blockingService) Start() error {
	close(b.started)
	<-b.quit
	return nil
}

func (b *blockingService) Stop() {
	b.once.Do(func() {
		b.order.add(b.name)
		close(b.quit)
	})
}

func waitStarted(t *testing.T, svcs ...*blockingService) {
	t.Helper()
	for _, s := range svcs {
		select {
		case <-s.started:
		case <-time.After(2 * time.Second):
			t.Fatalf("service %s did not start", s.name)
		}
	}
}

func TestLifecycle_ContextCancelStopsInReverse(t *testing.T) {
	order := &stopOrder{}
	a, b := newBlocking("a", order), newBlocking("b", order)
	lc := NewLifecycle(zaptest.NewLogger(t))
	lc.Add("a", a)
	lc.Add("b", b)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- lc.Run(ctx) }()

	waitStarted(t, a, b)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not stop")
	}
	assert.Equal(t, []string{"b", "a"}, order.names)
}

func TestLifecycle_ServiceErrorEndsRun(t *testing.T) {
	order := &stopOrder{}
	keeper := newBlocking("keeper", order)
	boom := errors.New("bind failed")

	lc := NewLifecycle(zaptest.NewLogger(t))
	lc.Add("keeper", keeper)
	lc.Add("broken", &FuncService{StartFn: func() error { return boom }})

	err := lc.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "service broken")
	assert.Equal(t, []string{"keeper"}, order.names)
}

func TestLifecycle_ServiceFinishingEndsRun(t *testing.T) {
	order := &stopOrder{}
	keeper := newBlocking("keeper", order)

	lc := NewLifecycle(zaptest.NewLogger(t))
	lc.Add("keeper", keeper)
	lc.Add("console", &FuncService{StartFn: func() error { return nil }})

	assert.NoError(t, lc.Run(context.Background()))
	assert.Equal(t, []string{"keeper"}, order.names)
}

func TestFuncService(t *testing.T) {
	var started, stopped bool
	svc := &FuncService{
		StartFn: func() error { started = true; return nil },
		StopFn:  func() { stopped = true },
	}
	require.NoError(t, svc.Start())
	svc.Stop()
	assert.True(t, started)
	assert.True(t, stopped)

	assert.NotPanics(t, (&FuncService{}).Stop)
}

func TestLifecycle_AddPanicsOnInvalid(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	assert.Panics(t, func() { lc.Add("", &FuncService{}) })
	assert.Panics(t, func() { lc.Add("x", nil) })
}
