package out

import (
	"context"
	"fmt"
	"io"

	"nextround/internal/modules/upload/domain"
	uploadout "nextround/internal/modules/upload/port/out"
	"nextround/internal/platform/logging"
)

// QueueNotifier buffers notices for a consumer such as the TUI. Notify never
// blocks; when the buffer is full the notice is dropped and logged.
type QueueNotifier struct {
	notices chan domain.Notice
}

func NewQueueNotifier(size int) *QueueNotifier {
	if size < 1 {
		size = 1
	}
	return &QueueNotifier{notices: make(chan domain.Notice, size)}
}

var _ uploadout.Notifier = (*QueueNotifier)(nil)

func (n *QueueNotifier) Notify(notice domain.Notice) {
	select {
	case n.notices <- notice:
	default:
		logging.Warn("notice dropped", "kind", notice.Kind)
	}
}

// Next blocks until a notice arrives or ctx ends, and returns its message.
func (n *QueueNotifier) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case notice := <-n.notices:
		return notice.Message, nil
	}
}

// LogNotifier writes notices to the log and to w, for the command line.
type LogNotifier struct {
	w io.Writer
}

func NewLogNotifier(w io.Writer) LogNotifier {
	return LogNotifier{w: w}
}

func (n LogNotifier) Notify(notice domain.Notice) {
	logging.Warn("notice", "kind", notice.Kind, "message", notice.Message)
	if n.w != nil {
		_, _ = fmt.Fprintln(n.w, notice.Message)
	}
}
