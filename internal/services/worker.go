package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/logger"
)

// Worker fans indexed jobs out to a fixed number of goroutines.
type Worker interface {
	Process(ctx context.Context, total int, job func(ctx context.Context, index int))
	Concurrency() int
}

type worker struct {
	concurrency int
	log         *zap.Logger
}

func NewWorker(concurrency int, log *zap.Logger) Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &worker{
		concurrency: concurrency,
		log:         logger.WithFields(log),
	}
}

func (w *worker) Concurrency() int {
	return w.concurrency
}

// Process runs job once for every index in [0, total) and returns when all of
// them finished. Every index is dispatched even after ctx is cancelled; jobs
// are expected to check ctx themselves.
func (w *worker) Process(ctx context.Context, total int, job func(ctx context.Context, index int)) {
	if total <= 0 {
		return
	}

	workers := w.concurrency
	if workers > total {
		workers = total
	}

	w.log.Debug("🚀 Starting workers", zap.Int("workers", workers), zap.Int("jobs", total))

	jobQueue := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go w.processJobs(ctx, i+1, jobQueue, job, &wg)
	}

	for index := 0; index < total; index++ {
		jobQueue <- index
	}
	close(jobQueue)

	wg.Wait()
	w.log.Debug("✅ Workers finished", zap.Int("jobs", total))
}

func (w *worker) processJobs(ctx context.Context, workerID int, jobQueue <-chan int, job func(context.Context, int), wg *sync.WaitGroup) {
	defer wg.Done()

	for index := range jobQueue {
		w.log.Debug("👷 Worker processing job", zap.Int("worker", workerID), zap.Int("job", index))
		job(ctx, index)
	}
}
