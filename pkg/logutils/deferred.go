package logutils

import (
	"bufio"
	"bytes"
	"io"
	"sync"
)

// Deferred holds log events in memory while the terminal belongs to the
// TUI and replays them afterwards. Safe for concurrent use.
type Deferred struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write stores p until Flush.
func (d *Deferred) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Flush replays the held events to w, one Write per line so event-parsing
// writers such as zerolog.ConsoleWriter see a single event at a time, and
// empties the buffer.
func (d *Deferred) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer d.buf.Reset()

	sc := bufio.NewScanner(&d.buf)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := append(sc.Bytes(), '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return sc.Err()
}
