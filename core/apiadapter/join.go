package apiadapter

import "sync"

// branch is the outcome of one concurrently fetched sub-request
type branch[T any] struct {
	value T
	err   error
}

// ok reports whether the branch succeeded
func (b branch[T]) ok() bool {
	return b.err == nil
}

// valueOr returns the value of a successful branch or fallback otherwise
func (b branch[T]) valueOr(fallback T) T {
	if b.ok() {
		return b.value
	}
	return fallback
}

// spawn runs fn on its own goroutine and records its outcome in dst.
// Every branch finishes before wg.Wait returns, so one failure never
// cancels its siblings; the caller decides which branches are essential.
func spawn[T any](wg *sync.WaitGroup, dst *branch[T], fn func() (T, error)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := fn()
		*dst = branch[T]{value: v, err: err}
	}()
}
