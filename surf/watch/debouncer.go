package watch

import (
	"sync"
	"time"
)

// pending is the debounce state of one path.
type pending struct {
	first time.Time
	count int // events seen, also the timer generation
	timer *time.Timer
}

// Debouncer coalesces bursts of events per path. A path settles when no
// event arrived for delay, or when maxDelay passed since its first event,
// whichever comes first. Settled paths are sent on Paths.
type Debouncer struct {
	delay    time.Duration
	maxDelay time.Duration
	out      chan string
	done     chan struct{}

	mu      sync.Mutex
	pending map[string]*pending
	closed  bool
	wg      sync.WaitGroup
	now     func() time.Time
}

func NewDebouncer(delay, maxDelay time.Duration, queueCapacity int) *Debouncer {
	if maxDelay < delay {
		maxDelay = delay
	}
	return &Debouncer{
		delay:    delay,
		maxDelay: maxDelay,
		out:      make(chan string, queueCapacity),
		done:     make(chan struct{}),
		pending:  make(map[string]*pending),
		now:      time.Now,
	}
}

// Add records an event for path.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	now := d.now()
	p, ok := d.pending[path]
	if !ok {
		p = &pending{first: now}
		d.pending[path] = p
	}
	p.count++

	wait := d.delay
	if remaining := d.maxDelay - now.Sub(p.first); remaining < wait {
		wait = max(remaining, 0)
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	gen := p.count
	p.timer = time.AfterFunc(wait, func() { d.flush(path, p, gen) })
}

// flush emits path if no event arrived since the timer for gen was set.
// It never holds mu while sending.
func (d *Debouncer) flush(path string, p *pending, gen int) {
	d.mu.Lock()
	if d.closed || d.pending[path] != p || p.count != gen {
		d.mu.Unlock()
		return
	}
	delete(d.pending, path)
	d.wg.Add(1)
	d.mu.Unlock()
	defer d.wg.Done()

	select {
	case d.out <- path:
	case <-d.done:
	}
}

// Paths delivers settled paths. It is closed by Close.
func (d *Debouncer) Paths() <-chan string {
	return d.out
}

// Pending is the number of paths still waiting to settle.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Close drops pending paths and closes Paths.
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, p := range d.pending {
		p.timer.Stop()
	}
	d.pending = nil
	close(d.done)
	d.mu.Unlock()

	d.wg.Wait()
	close(d.out)
}
