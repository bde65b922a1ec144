package kv

import (
	"context"
	"sync"
	"time"
)

const writeTimeout = 10 * time.Second

type pendingWrite struct {
	value  string
	remove bool
}

type keyQueue struct {
	pending *pendingWrite
	running bool
}

// Writer serializes writes per key so that two writes to the same key
// always land in call order, never completion order. Writes to
// different keys may complete in any order. Pending writes to a key
// coalesce: only the most recent value is flushed (last write wins).
//
// Writes are fire-and-forget from the caller's point of view; failures
// are reported through the onError callback and never returned.
type Writer struct {
	store   Store
	onError func(key string, err error)

	mu     sync.Mutex
	queues map[string]*keyQueue
	wg     sync.WaitGroup
}

func NewWriter(store Store, onError func(key string, err error)) *Writer {
	if onError == nil {
		onError = func(string, error) {}
	}
	return &Writer{
		store:   store,
		onError: onError,
		queues:  make(map[string]*keyQueue),
	}
}

// Set schedules a write of value under key and returns immediately.
func (w *Writer) Set(key, value string) {
	w.enqueue(key, &pendingWrite{value: value})
}

// Remove schedules a removal of key and returns immediately.
func (w *Writer) Remove(key string) {
	w.enqueue(key, &pendingWrite{remove: true})
}

func (w *Writer) enqueue(key string, pw *pendingWrite) {
	w.mu.Lock()
	q, ok := w.queues[key]
	if !ok {
		q = &keyQueue{}
		w.queues[key] = q
	}
	q.pending = pw
	if !q.running {
		q.running = true
		w.wg.Add(1)
		go w.drain(key, q)
	}
	w.mu.Unlock()
}

func (w *Writer) drain(key string, q *keyQueue) {
	defer w.wg.Done()

	for {
		w.mu.Lock()
		pw := q.pending
		q.pending = nil
		if pw == nil {
			q.running = false
			w.mu.Unlock()
			return
		}
		w.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		var err error
		if pw.remove {
			err = w.store.Remove(ctx, key)
		} else {
			err = w.store.Set(ctx, key, pw.value)
		}
		cancel()

		if err != nil {
			w.onError(key, err)
		}
	}
}

// Flush blocks until every scheduled write has been attempted. Meant
// for shutdown and tests; callers on the mutation path never wait.
func (w *Writer) Flush() {
	w.wg.Wait()
}
