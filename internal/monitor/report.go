package monitor

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const timeLayout = "2006/01/02 15:04:05"

var ErrReportWrite = errors.New("monitor: cannot write status report")

var expiredDate = time.Unix(0, 0).UTC().Format(http.TimeFormat)

// WriteReport renders the plain-text status report to w. A failed write is
// returned wrapped in ErrReportWrite and must be treated as fatal by the host.
func (m *Monitor) WriteReport(w http.ResponseWriter) error {
	var buf bytes.Buffer
	renderReport(&buf, m.clock.Now(), m.Snapshot())

	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("Pragma", "no-cache")
	h.Set("Cache-Control", "no-store, no-cache, must-revalidate")
	h.Set("Expires", expiredDate)
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrReportWrite, err)
	}
	return nil
}

func renderReport(buf *bytes.Buffer, now time.Time, s Snapshot) {
	fmt.Fprintf(buf, "Requests monitoring status (%s)\n", now.Format(timeLayout))
	buf.WriteString("\n")

	fmt.Fprintf(buf, "Duration threshold : %d\n", s.Config.DurationThreshold)
	fmt.Fprintf(buf, "Log in memory size : %d lines\n", s.Config.LogSize)
	buf.WriteString("\n")

	fmt.Fprintf(buf, "Initialization date/time : %s\n", s.InitializedAt.Format(timeLayout))
	fmt.Fprintf(buf, "Total requests count     : %d\n", s.TotalCount)
	fmt.Fprintf(buf, "Long time requests count : %d\n", s.SlowCount)
	buf.WriteString("\n")

	fmt.Fprintf(buf, "%d last long time requests :\n", len(s.Entries))
	for _, e := range s.Entries {
		buf.WriteString(formatEntry(e))
		buf.WriteString("\n")
	}
}

func formatEntry(e LogEntry) string {
	line := fmt.Sprintf("%s [ %d / %d ] %d ms : %s",
		e.StartedAt.Format(timeLayout), e.SlowCount, e.TotalCount, e.ElapsedMillis, e.URL)
	if e.Query != "" {
		line += "?" + e.Query
	}
	return line
}
