package executor

import (
	"fmt"
	"time"
)

// animationFrames cycles a small spinner, matching the original
// interpreter's terminal animation loop.
var animationFrames = []string{"|", "/", "-", "\\"}

// StartAnimation launches the background animation worker from spec.md
// §5: it prints text plus a cycling spinner until StopAnimation is
// called, and never touches interpreter state (frames, registries) —
// only the output sink.
func (e *Executor) StartAnimation(text string) {
	e.animMu.Lock()
	defer e.animMu.Unlock()

	if e.animStop != nil {
		return // an animation is already running; spec.md leaves this implementation-defined
	}

	e.animStop = make(chan struct{})
	e.animDone = make(chan struct{})
	stop := e.animStop
	done := e.animDone

	go func() {
		defer close(done)
		ticker := time.NewTicker(150 * time.Millisecond)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-stop:
				fmt.Fprint(e.output, "\r")
				return
			case <-ticker.C:
				fmt.Fprintf(e.output, "\r%s %s", text, animationFrames[i%len(animationFrames)])
				i++
			}
		}
	}()
}

// StopAnimation sets the stop flag and blocks until the worker
// terminates, per spec.md §5's join requirement.
func (e *Executor) StopAnimation() {
	e.animMu.Lock()
	stop, done := e.animStop, e.animDone
	e.animStop, e.animDone = nil, nil
	e.animMu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}
