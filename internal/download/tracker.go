// Package download mirrors engine download handles into list entries the
// downloads popup can render.
package download

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/runnerr0/crusta/internal/engine"
	"github.com/runnerr0/crusta/internal/logger"
	"github.com/runnerr0/crusta/internal/signal"
)

// Button labels for the pause toggle.
const (
	LabelPause  = "Pause"
	LabelResume = "Resume"
)

// Terminal status texts. Interrupted downloads show the engine's reason.
const (
	StatusCompleted = "Downloaded."
	StatusCancelled = "Download Cancelled."
)

// Indeterminate is the Percent of a download whose size is unknown.
const Indeterminate = -1

// Snapshot is a copy of an entry's visible state.
type Snapshot struct {
	ID       uuid.UUID
	FileName string
	Received int64
	Total    int64
	Percent  int
	Paused   bool
	Finished bool
	State    engine.DownloadState
	Status   string
}

// Entry tracks one accepted download.
type Entry struct {
	mu      sync.Mutex
	handle  engine.DownloadHandle
	snap    Snapshot
	started time.Time

	tracker *Tracker
}

// Tracker owns the download list, newest first.
type Tracker struct {
	mu      sync.Mutex
	entries []*Entry
	log     logger.Logger

	// Changed fires after any entry changes.
	Changed signal.Signal[Snapshot]
}

// NewTracker returns an empty tracker.
func NewTracker(log logger.Logger) *Tracker {
	if log == nil {
		log = logger.NewNop()
	}
	return &Tracker{log: log}
}

// Handle accepts h and starts mirroring it. The new entry is placed first.
func (t *Tracker) Handle(h engine.DownloadHandle) *Entry {
	h.Accept()

	e := &Entry{
		handle:  h,
		started: time.Now(),
		tracker: t,
		snap: Snapshot{
			ID:       uuid.New(),
			FileName: h.FileName(),
			Percent:  Indeterminate,
			State:    h.State(),
		},
	}

	h.OnProgress(e.progress)
	h.OnFinished(e.finished)

	t.mu.Lock()
	t.entries = append([]*Entry{e}, t.entries...)
	listed := len(t.entries)
	t.mu.Unlock()

	t.log.Info("download accepted",
		logger.String("id", e.snap.ID.String()),
		logger.String("file", e.snap.FileName),
		logger.Int("listed", listed),
	)
	t.Changed.Emit(e.Snapshot())
	return e
}

// Entries returns snapshots of every entry, newest first.
func (t *Tracker) Entries() []Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Snapshot, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.Snapshot())
	}
	return out
}

// Find returns the entry with id.
func (t *Tracker) Find(id uuid.UUID) (*Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.entries {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

// ClearFinished drops entries in a terminal state and reports how many.
func (t *Tracker) ClearFinished() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.entries[:0]
	removed := 0
	for _, e := range t.entries {
		if e.Snapshot().Finished {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(t.entries); i++ {
		t.entries[i] = nil
	}
	t.entries = kept
	return removed
}

// ID returns the entry's identifier.
func (e *Entry) ID() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap.ID
}

// Snapshot returns a copy of the entry's state.
func (e *Entry) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap
}

// TogglePause pauses a running download or resumes a paused one and
// returns the label the toggle should now show.
func (e *Entry) TogglePause() string {
	if e.Snapshot().Finished {
		return LabelPause
	}

	label := LabelResume
	if e.handle.IsPaused() {
		e.handle.Resume()
		label = LabelPause
	} else {
		e.handle.Pause()
	}

	e.mu.Lock()
	e.snap.Paused = e.handle.IsPaused()
	snap := e.snap
	e.mu.Unlock()

	e.tracker.Changed.Emit(snap)
	return label
}

// Cancel asks the engine to cancel. The entry turns terminal when the
// engine reports it finished.
func (e *Entry) Cancel() {
	if e.Snapshot().Finished {
		return
	}
	e.handle.Cancel()
}

func (e *Entry) progress(received, total int64) {
	e.mu.Lock()
	e.snap.Received = received
	e.snap.Total = total
	e.snap.Percent = Percent(received, total)
	e.snap.State = engine.DownloadInProgress
	snap := e.snap
	e.mu.Unlock()

	e.tracker.Changed.Emit(snap)
}

func (e *Entry) finished() {
	state := e.handle.State()

	e.mu.Lock()
	e.snap.Finished = true
	e.snap.Paused = false
	e.snap.State = state
	e.snap.Status = StatusText(state, e.handle.InterruptReason())
	snap := e.snap
	e.mu.Unlock()

	e.tracker.log.Info("download finished",
		logger.String("id", snap.ID.String()),
		logger.String("state", state.String()),
		logger.String("status", snap.Status),
		logger.Int64("received", snap.Received),
		logger.Int64("total", snap.Total),
		logger.Duration("elapsed", time.Since(e.started)),
	)
	e.tracker.Changed.Emit(snap)
}

// Percent converts byte progress to 0..100, or Indeterminate when total is
// unknown.
func Percent(received, total int64) int {
	if total <= 0 {
		return Indeterminate
	}
	p := received * 100 / total
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return int(p)
}

// StatusText is the label shown once a download stops.
func StatusText(state engine.DownloadState, reason string) string {
	switch state {
	case engine.DownloadCompleted:
		return StatusCompleted
	case engine.DownloadCancelled:
		return StatusCancelled
	case engine.DownloadInterrupted:
		return reason
	default:
		return ""
	}
}
