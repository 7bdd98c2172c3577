// Package seq reads iter.Seq values in fixed-size chunks.
package seq

import "iter"

// Reader pulls elements from an iter.Seq into caller-provided buffers, so that long sequences
// such as the values of a deep stack can be consumed page by page without first collecting them
// into one slice.
type Reader[T any] struct {
	// next and stop are the pair returned by iter.Pull for the wrapped sequence.
	next func() (T, bool)
	stop func()

	done bool
}

// NewReader returns a Reader over seq. The caller must either read until a short count is
// returned or call Close.
func NewReader[T any](seq iter.Seq[T]) *Reader[T] {
	next, stop := iter.Pull(seq)
	return &Reader[T]{
		next: next,
		stop: stop,
	}
}

// Read fills buf with the next elements of the sequence and returns how many were written. A
// count lower than len(buf) means the sequence is exhausted; the reader has then released the
// sequence and every later Read returns 0.
func (r *Reader[T]) Read(buf []T) int {
	var head int
	for !r.done && head < len(buf) {
		value, ok := r.next()
		if !ok {
			r.done = true
			r.stop()
			break
		}

		buf[head] = value
		head++
	}
	return head
}

// Close releases the sequence. It is safe to call more than once.
func (r *Reader[T]) Close() error {
	r.done = true
	r.stop()
	return nil
}

// Batches returns a sequence of consecutive chunks of seq, each holding size elements except
// possibly the last. Every chunk is a fresh slice. A size below 1 is treated as 1.
func Batches[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	size = max(size, 1)

	return func(yield func([]T) bool) {
		r := NewReader(seq)
		defer r.Close()

		for {
			buf := make([]T, size)
			n := r.Read(buf)
			if n > 0 && !yield(buf[:n]) {
				return
			}
			if n < size {
				return
			}
		}
	}
}
