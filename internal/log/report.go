package log

import (
	"io"
	"sync"
	"time"
)

// ReportLogger is the diagnostic sink for decoded controller snapshots.
type ReportLogger interface {
	Report(line string)
}

// reportLogger implements ReportLogger with a mutex-guarded writer.
type reportLogger struct {
	w          io.Writer
	timestamps bool
	mu         sync.Mutex
}

// NewReport creates a new ReportLogger. If writer is nil, returns a no-op logger.
// With timestamps set each line is prefixed with the local wall clock time.
func NewReport(w io.Writer, timestamps bool) ReportLogger {
	return &reportLogger{w: w, timestamps: timestamps}
}

// Report writes one line. Empty lines are dropped.
func (r *reportLogger) Report(line string) {
	if line == "" || r.w == nil {
		return
	}

	buf := make([]byte, 0, len(line)+32)
	if r.timestamps {
		buf = time.Now().AppendFormat(buf, "2006/01/02 15:04:05.000 ")
	}
	buf = append(buf, line...)
	buf = append(buf, '\n')

	r.mu.Lock()
	_, _ = r.w.Write(buf)
	r.mu.Unlock()
}
