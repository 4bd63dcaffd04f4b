package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func withBuffer(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	var buf bytes.Buffer
	InitWriter(&buf, level)
	return &buf
}

func TestLog_FormatsFields(t *testing.T) {
	buf := withBuffer(t, LevelDebug)

	Info(CatStore, "saved", "key", "editor_content", "bytes", 12)

	out := buf.String()
	require.Contains(t, out, "[INFO] [store] saved")
	require.Contains(t, out, "key=editor_content")
	require.Contains(t, out, "bytes=12")
}

func TestLog_OrphanKey(t *testing.T) {
	buf := withBuffer(t, LevelDebug)

	Debug(CatUI, "resize", "width")

	require.Contains(t, buf.String(), "width=<missing>")
}

func TestLog_MinLevelFilters(t *testing.T) {
	buf := withBuffer(t, LevelWarn)

	Debug(CatHistory, "hidden")
	Info(CatHistory, "hidden too")
	Warn(CatHistory, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN] [history] shown")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := withBuffer(t, LevelDebug)

	ErrorErr(CatClipboard, "read failed", errors.New("no display"))
	ErrorErr(CatClipboard, "nil error", nil)

	require.Contains(t, buf.String(), "error=no display")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_Disabled(t *testing.T) {
	buf := withBuffer(t, LevelDebug)
	SetEnabled(false)

	Error(CatSearch, "dropped")

	require.Empty(t, buf.String())
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
