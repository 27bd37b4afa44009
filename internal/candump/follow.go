package candump

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dbclab/candecode/internal/domain"
)

// Follower streams frame records from a growing candump log, like tail -f.
// It reads to the current end of file, then waits for fsnotify write
// events before reading on. A poll ticker backs up the watcher for file
// systems that deliver no events. It implements ports.FrameSource.
//
// A Follower never returns io.EOF; it ends only through context
// cancellation.
type Follower struct {
	f       *os.File
	r       *bufio.Reader
	watcher *fsnotify.Watcher
	path    string
	poll    time.Duration

	partial string
	dropped int
}

// Follow opens a candump log for tailing. poll is the fallback wake-up
// interval used when no file system event arrives.
func Follow(path string, poll time.Duration) (*Follower, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		f.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &Follower{
		f:       f,
		r:       bufio.NewReaderSize(f, 64*1024),
		watcher: watcher,
		path:    path,
		poll:    poll,
	}, nil
}

// Next returns the next parseable frame record, blocking until one is
// appended or the context is cancelled.
func (t *Follower) Next(ctx context.Context) (domain.FrameRecord, error) {
	for {
		chunk, err := t.r.ReadString('\n')
		if err == nil {
			line := t.partial + chunk
			t.partial = ""
			rec, ok := ParseLine(strings.TrimRight(line, "\r\n"))
			if !ok {
				t.dropped++
				continue
			}
			return rec, nil
		}
		if err != io.EOF {
			return domain.FrameRecord{}, fmt.Errorf("read log: %w", err)
		}

		// Mid-line EOF: the writer has not finished this line yet. Stash
		// the fragment and wait for more data.
		t.partial += chunk
		if err := t.wait(ctx); err != nil {
			return domain.FrameRecord{}, err
		}
	}
}

// wait blocks until the log grows, the poll interval elapses, or the
// context is cancelled.
func (t *Follower) wait(ctx context.Context) error {
	timer := time.NewTimer(t.poll)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-t.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if event.Op&fsnotify.Write != 0 {
				return nil
			}

		case _, ok := <-t.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			// Watcher errors are not fatal; the poll timer still fires.

		case <-timer.C:
			return nil
		}
	}
}

// Dropped returns the number of unparseable lines skipped so far.
func (t *Follower) Dropped() int {
	return t.dropped
}

// Close stops the watcher and closes the log file.
func (t *Follower) Close() error {
	werr := t.watcher.Close()
	ferr := t.f.Close()
	if werr != nil {
		return werr
	}
	return ferr
}
