package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/viewrig/parameter"
)

// Loop drives Step on a fixed interval for hosts without a render loop
// dt is measured from the time provider rather than assumed from the
// interval, so scheduling jitter does not distort the animation
type Loop struct {
	ctx      *Context
	interval time.Duration

	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool
}

func NewLoop(ctx *Context, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	return &Loop{
		ctx:      ctx,
		interval: interval,
	}
}

// Start begins ticking; repeated calls are a no-op
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.mu.Lock()
		l.stopChan = make(chan struct{})
		stop := l.stopChan
		l.mu.Unlock()

		l.wg.Add(1)
		go l.run(stop)
	}
}

// Stop halts ticking and waits for the loop goroutine to exit
// The loop can be started again afterwards
func (l *Loop) Stop() {
	if l.running.CompareAndSwap(true, false) {
		l.mu.Lock()
		close(l.stopChan)
		l.mu.Unlock()
		l.wg.Wait()
	}
}

func (l *Loop) run(stop <-chan struct{}) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := l.ctx.Time.Now()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			now := l.ctx.Time.Now()
			dt := now.Sub(last).Seconds()
			last = now
			l.ctx.Step(dt)
		}
	}
}
