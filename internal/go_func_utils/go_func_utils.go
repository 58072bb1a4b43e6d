package go_func_utils

import (
	"log"
	"runtime/debug"
	"sync"
)

// SafeGo runs fn on a new goroutine. A panic is logged with its stack
// before being re-raised so it is not lost when stdout carries the report.
func SafeGo(logger *log.Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Printf("PANIC: %v\n%s", r, debug.Stack())
				panic(r)
			}
		}()
		fn()
	}()
}

// ForEachIndex calls fn(i) for every i in [0, n) using at most workers
// goroutines and returns once all calls are done. workers <= 1 runs
// everything on the calling goroutine.
func ForEachIndex(logger *log.Logger, n, workers int, fn func(i int)) {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	if workers > n {
		workers = n
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		SafeGo(logger, func() {
			defer wg.Done()
			for i := range indexes {
				fn(i)
			}
		})
	}
	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
}
