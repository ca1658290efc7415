package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	t.Run("delivers when the receiver is listening", func(t *testing.T) {
		done := make(chan struct{})
		tgt := make(chan int, 1)
		require.True(t, Send(done, tgt, 42))
		require.Equal(t, 42, <-tgt)
	})

	t.Run("gives up once done is signalled", func(t *testing.T) {
		done := make(chan struct{})
		close(done)
		tgt := make(chan int)
		require.False(t, Send(done, tgt, 42))
	})
}

func TestFormatJson(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	in := make(chan map[string]string, 2)
	in <- map[string]string{"id": "p1"}
	in <- map[string]string{"id": "p2"}
	close(in)

	var lines []string
	for line := range FormatJson(done, in) {
		lines = append(lines, line)
	}
	require.Equal(t, []string{`{"id":"p1"}`, `{"id":"p2"}`}, lines)
}

func TestMap(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	in := make(chan int, 3)
	in <- 1
	in <- 2
	in <- 3
	close(in)

	var doubled []int
	for v := range Map(done, in, func(v int) int { return v * 2 }) {
		doubled = append(doubled, v)
	}
	require.Equal(t, []int{2, 4, 6}, doubled)
}
