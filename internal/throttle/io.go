package throttle

import (
	"context"
	"io"
)

// DefaultChunkSize bounds how many bytes a single reservation covers, so a
// large Write is spread over time instead of stalling once for its full size.
const DefaultChunkSize = 32 * 1024

// Writer limits the rate at which bytes reach the underlying writer.
type Writer struct {
	ctx     context.Context
	w       io.Writer
	limiter *Limiter
	chunk   int
}

// NewWriter wraps w. Writes fail with ctx.Err() once ctx is done.
func NewWriter(ctx context.Context, w io.Writer, limiter *Limiter) *Writer {
	return &Writer{ctx: ctx, w: w, limiter: limiter, chunk: DefaultChunkSize}
}

// Write implements io.Writer. It returns the number of bytes that reached
// the underlying writer before any error.
func (tw *Writer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		n := len(p)
		if n > tw.chunk {
			n = tw.chunk
		}

		if err := tw.limiter.WaitN(tw.ctx, n); err != nil {
			return written, err
		}

		m, err := tw.w.Write(p[:n])
		written += m
		if err != nil {
			return written, err
		}
		if m < n {
			return written, io.ErrShortWrite
		}
		p = p[n:]
	}
	return written, nil
}

// Reader limits the rate at which bytes are read from the underlying reader.
type Reader struct {
	ctx     context.Context
	r       io.Reader
	limiter *Limiter
	chunk   int
}

// NewReader wraps r. Reads fail with ctx.Err() once ctx is done.
func NewReader(ctx context.Context, r io.Reader, limiter *Limiter) *Reader {
	return &Reader{ctx: ctx, r: r, limiter: limiter, chunk: DefaultChunkSize}
}

// Read implements io.Reader. Bytes are read first and then paid for, so the
// reservation always matches what was actually delivered.
func (tr *Reader) Read(p []byte) (int, error) {
	if err := tr.ctx.Err(); err != nil {
		return 0, err
	}
	if len(p) > tr.chunk {
		p = p[:tr.chunk]
	}

	n, err := tr.r.Read(p)
	if n > 0 {
		if werr := tr.limiter.WaitN(tr.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
