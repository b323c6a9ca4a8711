package engine

// DownloadState is the lifecycle position of a download.
type DownloadState int

const (
	DownloadRequested DownloadState = iota
	DownloadInProgress
	DownloadCompleted
	DownloadCancelled
	DownloadInterrupted
)

func (s DownloadState) String() string {
	switch s {
	case DownloadRequested:
		return "requested"
	case DownloadInProgress:
		return "in_progress"
	case DownloadCompleted:
		return "completed"
	case DownloadCancelled:
		return "cancelled"
	case DownloadInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further progress can happen.
func (s DownloadState) Terminal() bool {
	return s == DownloadCompleted || s == DownloadCancelled || s == DownloadInterrupted
}

// DownloadHandle is an engine-owned transfer. Progress and finished
// callbacks are delivered on the UI loop. A total of 0 bytes means the
// size is unknown.
type DownloadHandle interface {
	Accept()
	Cancel()
	Pause()
	Resume()
	IsPaused() bool
	State() DownloadState
	InterruptReason() string
	FileName() string
	OnProgress(fn func(received, total int64))
	OnFinished(fn func())
}
