package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_DrainOrder(t *testing.T) {
	q := NewQueue()
	q.Notify(MsgCopied)
	q.Notify(MsgNotFound)

	last, ok := q.Last()
	require.True(t, ok)
	require.Equal(t, MsgNotFound, last)

	require.Equal(t, []string{MsgCopied, MsgNotFound}, q.Drain())
	require.Empty(t, q.Drain())

	_, ok = q.Last()
	require.False(t, ok)
}

func TestFunc(t *testing.T) {
	var got string
	var n Notifier = Func(func(m string) { got = m })

	n.Notify("hi")

	require.Equal(t, "hi", got)
}

func TestReplaced(t *testing.T) {
	require.Equal(t, "Replaced 1 occurrence", Replaced(1))
	require.Equal(t, "Replaced 3 occurrences", Replaced(3))
}
