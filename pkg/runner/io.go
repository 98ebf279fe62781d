package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// lineSizeFactor scales the input limit into the cap for a raw line, which
// leaves room for JSON quoting and escapes around the value.
const lineSizeFactor = 4

type lineResult struct {
	text string
	err  error
}

// linePump reads lines on a background goroutine so that a blocked read
// never prevents the caller from observing context cancellation.
// Lines longer than the cap are discarded while reading and reported as
// ErrInputTooLarge, so memory stays bounded by the cap.
type linePump struct {
	reader *bufio.Reader
	lines  chan lineResult
	done   chan struct{}
	start  sync.Once
	stop   sync.Once
}

func newLinePump(r io.Reader) *linePump {
	return &linePump{
		reader: bufio.NewReader(r),
		lines:  make(chan lineResult, 1),
		done:   make(chan struct{}),
	}
}

func (p *linePump) run() {
	defer close(p.lines)
	for {
		select {
		case <-p.done:
			return
		default:
		}

		res, last := p.readLine(lineSizeFactor * maxInputSize())
		if res.text != "" || res.err != nil {
			select {
			case p.lines <- res:
			case <-p.done:
				return
			}
		}
		if last {
			return
		}
	}
}

// readLine returns the next line, or ErrInputTooLarge once the rest of an
// oversize line has been skipped. last is true when the reader is exhausted.
func (p *linePump) readLine(limit int) (res lineResult, last bool) {
	var buf []byte
	size := 0
	for {
		chunk, err := p.reader.ReadSlice('\n')
		size += len(chunk)
		if size <= limit {
			buf = append(buf, chunk...)
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err != nil && err != io.EOF:
			return lineResult{err: err}, true
		}

		last = err == io.EOF
		if size > limit {
			return lineResult{err: fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, size, limit)}, last
		}
		return lineResult{text: string(buf)}, last
	}
}

// next returns the next raw line, including its trailing newline if any.
func (p *linePump) next(ctx context.Context) (string, error) {
	p.start.Do(func() { go p.run() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

// Close stops the reading goroutine. A read already blocked on the
// underlying reader finishes first.
func (p *linePump) Close() error {
	p.stop.Do(func() { close(p.done) })
	return nil
}
