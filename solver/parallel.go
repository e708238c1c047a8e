package solver

import "sync"

// parallelFor runs n independent tasks across the given number of worker
// goroutines and joins before returning. Each policy slot is written by
// exactly one task and reads only target slots finalized before the call,
// so no locking is needed; the join is the barrier that publishes every
// write to the next dependency level.
func parallelFor(goroutines, n int, task func(i int)) {
	if n <= 0 {
		return
	}
	if goroutines < 1 {
		goroutines = 1
	}
	if goroutines > n {
		goroutines = n
	}

	work := make(chan int, n)
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range work {
				task(i)
			}
		}()
	}

	wg.Wait()
}
