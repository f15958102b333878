package monitor_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"requestsmonitor/internal/monitor"
)

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct {
	header http.Header
	status int
}

func (w *failingWriter) Header() http.Header       { return w.header }
func (w *failingWriter) WriteHeader(status int)    { w.status = status }
func (w *failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestWriteReport_Format(t *testing.T) {
	m, clock := newTestMonitor(t, map[string]string{"duration": "100", "logsize": "2"})

	require.NoError(t, serve(m, clock, "/a", 50*time.Millisecond, nil))
	require.NoError(t, serve(m, clock, "/b?x=1", 150*time.Millisecond, nil))
	require.NoError(t, serve(m, clock, "/c", 200*time.Millisecond, nil))
	clock.Advance(5 * time.Second)

	rec := httptest.NewRecorder()
	require.NoError(t, serve(m, clock, "/monitor", 0, nil))
	require.NoError(t, m.WriteReport(rec))

	expected := "Requests monitoring status (2026/10/17 09:00:05)\n" +
		"\n" +
		"Duration threshold : 100\n" +
		"Log in memory size : 2 lines\n" +
		"\n" +
		"Initialization date/time : 2026/10/17 09:00:00\n" +
		"Total requests count     : 3\n" +
		"Long time requests count : 2\n" +
		"\n" +
		"2 last long time requests :\n" +
		"2026/10/17 09:00:00 [ 1 / 2 ] 150 ms : http://example.com/b?x=1\n" +
		"2026/10/17 09:00:00 [ 2 / 3 ] 200 ms : http://example.com/c\n"

	assert.Equal(t, expected, rec.Body.String())
}

func TestWriteReport_EmptyLog(t *testing.T) {
	m, _ := newTestMonitor(t, nil)

	rec := httptest.NewRecorder()
	require.NoError(t, m.WriteReport(rec))

	assert.Contains(t, rec.Body.String(), "Duration threshold : 1000\n")
	assert.Contains(t, rec.Body.String(), "Log in memory size : 100 lines\n")
	assert.Contains(t, rec.Body.String(), "Total requests count     : 0\n")
	assert.Contains(t, rec.Body.String(), "\n0 last long time requests :\n")
}

func TestWriteReport_DisablesCaching(t *testing.T) {
	m, _ := newTestMonitor(t, nil)

	rec := httptest.NewRecorder()
	require.NoError(t, m.WriteReport(rec))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
	assert.Equal(t, "no-store, no-cache, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "Thu, 01 Jan 1970 00:00:00 GMT", rec.Header().Get("Expires"))
}

func TestWriteReport_WriteFailure(t *testing.T) {
	m, _ := newTestMonitor(t, nil)
	w := &failingWriter{header: http.Header{}}

	err := m.Intercept(w, monitor.Request{Path: "/monitor"}, func() error { return nil })

	require.Error(t, err)
	assert.ErrorIs(t, err, monitor.ErrReportWrite)
	assert.ErrorIs(t, err, errBrokenPipe)
}
