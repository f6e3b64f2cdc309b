package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// spinnerInterval is the time between animation frames.
const spinnerInterval = 80 * time.Millisecond

// pencilFrames animate a pencil scribbling back and forth.
var pencilFrames = []string{"✎ ", "✎╴", "✎─", "✎╶", " ✎", "╶✎", "─✎", "╴✎"}

// Spinner shows a scribbling pencil next to a status message while a
// sketch is generated. It draws on stderr so artifacts written to stdout
// stay clean, and it stops on its own when its context is cancelled.
type Spinner struct {
	w      io.Writer
	parent context.Context
	ctx    context.Context

	mu      sync.Mutex
	message string
	done    int
	total   int
	width   int

	cancel   context.CancelFunc
	stopOnce sync.Once
	stopped  chan struct{}
	started  bool
}

// newSpinnerWithContext creates a spinner bound to ctx.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	spinCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       os.Stderr,
		parent:  ctx,
		ctx:     spinCtx,
		cancel:  cancel,
		message: message,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation. It must be called at most once.
func (s *Spinner) Start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.draw(pencilFrames[frame%len(pencilFrames)])
			}
		}
	}()
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := s.message
	if s.total > 0 {
		line = fmt.Sprintf("%s %d/%d", s.message, s.done, s.total)
	}
	text := styleIconSpinner.Render(frame) + " " + StyleDim.Render(line)
	if n := len(frame) + 1 + len(line); n > s.width {
		s.width = n
	}
	fmt.Fprintf(s.w, "\r%s", text)
}

// SetMessage replaces the text shown next to the pencil and resets the counter.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	s.done, s.total = 0, 0
}

// Count shows a done/total counter after the message.
func (s *Spinner) Count(done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done, s.total = done, total
}

// Stop halts the animation and clears the line. Calling it again is a no-op.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.stopped
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.width > 0 {
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		}
	})
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the context passed to newSpinnerWithContext has ended.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
