package go_func_utils

import (
	"io"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEachIndex_VisitsEveryIndexOnce(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	for _, workers := range []int{0, 1, 3, 64} {
		counts := make([]int, 20)
		var mu sync.Mutex
		ForEachIndex(logger, len(counts), workers, func(i int) {
			mu.Lock()
			counts[i]++
			mu.Unlock()
		})
		for i, c := range counts {
			assert.Equal(t, 1, c, "workers=%d index=%d", workers, i)
		}
	}
}

func TestForEachIndex_Empty(t *testing.T) {
	called := false
	ForEachIndex(log.New(io.Discard, "", 0), 0, 4, func(int) { called = true })
	assert.False(t, called)
}

func TestSafeGo_RunsFunction(t *testing.T) {
	done := make(chan struct{})
	SafeGo(log.New(io.Discard, "", 0), func() { close(done) })
	<-done
}
