package retryio

import "io"

// PositionedFunc is a single-shot transfer at an explicit offset.
type PositionedFunc func(p []byte, off int64) (int, error)

// SequentialFunc is a single-shot transfer at the current position.
type SequentialFunc func(p []byte) (int, error)

// Option configures a transfer.
type Option func(*options)

type options struct {
	transient func(error) bool
}

// WithTransient sets the predicate deciding whether an error is a transient
// interruption to retry. A nil fn disables retrying.
func WithTransient(fn func(error) bool) Option {
	return func(o *options) {
		o.transient = fn
	}
}

func newOptions(opts []Option) options {
	o := options{transient: IsInterrupted}
	for _, opt := range opts {
		opt(&o)
	}
	if o.transient == nil {
		o.transient = func(error) bool { return false }
	}
	return o
}

// Positioned repeatedly invokes fn on the untransferred tail of p at the
// correspondingly advanced offset until p is exhausted, fn reports no
// progress, or fn fails.
func Positioned(fn PositionedFunc, p []byte, off int64, opts ...Option) (int, error) {
	o := newOptions(opts)

	done := 0
	for {
		n, err := fn(p[done:], off+int64(done))
		if n > 0 {
			done += min(n, len(p)-done)
		}

		if err != nil && o.transient(err) {
			if n > 0 && done == len(p) {
				return done, nil
			}
			continue
		}

		if err != nil || n <= 0 {
			if done == 0 && err != nil {
				return 0, err
			}
			return done, nil
		}

		if done == len(p) {
			return done, nil
		}
	}
}

// Sequential is Positioned for primitives that transfer at the current
// position of the channel.
func Sequential(fn SequentialFunc, p []byte, opts ...Option) (int, error) {
	return Positioned(func(b []byte, _ int64) (int, error) {
		return fn(b)
	}, p, 0, opts...)
}

// WriteAt writes p to w at off.
func WriteAt(w io.WriterAt, p []byte, off int64, opts ...Option) (int, error) {
	return Positioned(w.WriteAt, p, off, opts...)
}

// ReadAt reads len(p) bytes from r at off into p.
//
// Unlike io.ReaderAt, a read that stops early at end of input returns the
// byte count with a nil error; io.EOF is only returned when nothing was read.
func ReadAt(r io.ReaderAt, p []byte, off int64, opts ...Option) (int, error) {
	return Positioned(r.ReadAt, p, off, opts...)
}

// Write writes p to w at its current position.
func Write(w io.Writer, p []byte, opts ...Option) (int, error) {
	return Sequential(w.Write, p, opts...)
}
