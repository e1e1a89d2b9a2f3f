package tracking

import (
	"context"
	"log/slog"
	"sync"

	"github.com/balkashynov/timevate/internal/db"
	"github.com/balkashynov/timevate/internal/models"
)

// snapshot is the durable part of the service state at one point in time
type snapshot struct {
	timeData models.TimeData
	wins     []models.MicroWin
	session  *models.TimeSession
}

// writer persists snapshots on its own goroutine. Only the latest pending
// snapshot is kept: older ones are superseded before they are written.
type writer struct {
	store db.Store
	log   *slog.Logger

	mu        sync.Mutex
	pending   *snapshot
	submitted uint64 // generation of the newest snapshot handed in
	written   uint64 // generation the store has caught up with
	waiters   []flushWaiter
	closed    bool

	writeMu sync.Mutex // held while the store is being written
	wake    chan struct{}
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

type flushWaiter struct {
	gen uint64
	ch  chan struct{}
}

func newWriter(store db.Store, log *slog.Logger) *writer {
	w := &writer{
		store: store,
		log:   log,
		wake:  make(chan struct{}, 1),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

// submit queues snap and returns immediately. Snapshots submitted after
// close are dropped.
func (w *writer) submit(snap snapshot) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.log.Warn("state not saved: writer closed")
		return
	}
	w.pending = &snap
	w.submitted++
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *writer) run() {
	defer close(w.done)
	for {
		select {
		case <-w.stop:
			w.drain()
			return
		case <-w.wake:
			w.drain()
		}
	}
}

func (w *writer) drain() {
	for {
		w.writeMu.Lock()
		w.mu.Lock()
		snap, gen := w.pending, w.submitted
		w.pending = nil
		w.mu.Unlock()

		if snap == nil {
			w.writeMu.Unlock()
			return
		}
		w.write(context.Background(), *snap)
		w.writeMu.Unlock()
		w.markWritten(gen)
	}
}

// write saves the aggregate, then the wins, then the session. A failure is
// logged and the remaining keys are still attempted.
func (w *writer) write(ctx context.Context, snap snapshot) {
	if v, err := encodeTimeData(snap.timeData); err != nil {
		w.log.Error("encode failed", "key", db.KeyTimeData, "error", err)
	} else if err := w.store.Set(ctx, db.KeyTimeData, v); err != nil {
		w.log.Error("save failed", "key", db.KeyTimeData, "error", err)
	}

	if v, err := encodeMicroWins(snap.wins); err != nil {
		w.log.Error("encode failed", "key", db.KeyMicroWins, "error", err)
	} else if err := w.store.Set(ctx, db.KeyMicroWins, v); err != nil {
		w.log.Error("save failed", "key", db.KeyMicroWins, "error", err)
	}

	if v, err := encodeSession(snap.session); err != nil {
		w.log.Error("encode failed", "key", db.KeyCurrentSession, "error", err)
	} else if err := w.store.Set(ctx, db.KeyCurrentSession, v); err != nil {
		w.log.Error("save failed", "key", db.KeyCurrentSession, "error", err)
	}

	w.log.Debug("state saved", "wins", len(snap.wins), "open_session", snap.session != nil)
}

func (w *writer) markWritten(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen > w.written {
		w.written = gen
	}
	kept := w.waiters[:0]
	for _, fw := range w.waiters {
		if fw.gen <= w.written {
			close(fw.ch)
			continue
		}
		kept = append(kept, fw)
	}
	w.waiters = kept
}

// clear drops any unsaved snapshot, waits for an in-flight write, then wipes the store.
func (w *writer) clear(ctx context.Context) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	w.pending = nil
	gen := w.submitted
	w.mu.Unlock()

	err := w.store.Clear(ctx)
	w.markWritten(gen)
	return err
}

// flush blocks until every snapshot submitted before the call is in the store
func (w *writer) flush(ctx context.Context) error {
	w.mu.Lock()
	if w.written >= w.submitted {
		w.mu.Unlock()
		return nil
	}
	fw := flushWaiter{gen: w.submitted, ch: make(chan struct{})}
	w.waiters = append(w.waiters, fw)
	w.mu.Unlock()

	select {
	case <-fw.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close writes whatever is pending and stops the goroutine
func (w *writer) close(ctx context.Context) error {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.stop)
	})
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
