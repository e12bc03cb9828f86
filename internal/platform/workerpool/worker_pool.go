// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"time"

	"clinicor/internal/platform/logx"
)

// Task represents one unit of work for the pool. In clinicor a task is
// the full analysis of one classifier output file: read, rank, export.
type Task interface {
	// Execute runs the task
	Execute(ctx context.Context) error

	// Priority returns the task priority (higher runs earlier)
	Priority() int

	// Weight returns the estimated cost of the task (0-100)
	Weight() int

	// Name returns the task name
	Name() string
}

// Scheduler decides the submission order of a task batch.
type Scheduler interface {
	// Schedule orders the tasks according to the strategy
	Schedule(tasks []Task) []Task

	// Name returns the scheduler name
	Name() string
}

// Pool runs tasks concurrently with a pluggable scheduling strategy.
// Each analysis is independent (the engine shares only a read-only
// knowledge base), so tasks need no coordination beyond the pool itself.
type Pool struct {
	workers   int
	scheduler Scheduler
	logger    logx.Logger

	taskQueue chan Task
	results   chan TaskResult

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// TaskResult carries the outcome of one task.
type TaskResult struct {
	Task     Task
	Error    error
	Duration time.Duration
}

// Config configures the pool.
type Config struct {
	Workers   int
	Scheduler Scheduler
	Logger    logx.Logger
}

// New creates a worker pool.
func New(cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewFIFOScheduler()
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:   cfg.Workers,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger.With("component", "worker-pool"),
		taskQueue: make(chan Task, cfg.Workers*2),
		results:   make(chan TaskResult, cfg.Workers*2),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	p.logger.Debug("starting worker pool", "workers", p.workers, "scheduler", p.scheduler.Name())

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case task, ok := <-p.taskQueue:
			if !ok {
				return
			}
			p.run(id, task)
		}
	}
}

func (p *Pool) run(workerID int, task Task) {
	start := time.Now()

	p.logger.Debug("executing task", "worker_id", workerID, "task", task.Name())

	err := task.Execute(p.ctx)
	duration := time.Since(start)

	p.logger.Debug("task finished",
		"worker_id", workerID,
		"task", task.Name(),
		"duration_ms", duration.Milliseconds(),
		"failed", err != nil,
	)

	select {
	case p.results <- TaskResult{Task: task, Error: err, Duration: duration}:
	case <-p.ctx.Done():
		// Pool stopped, discard result
	}
}

// Submit schedules the batch, feeds it to the workers and blocks until
// every task finished (or the pool stopped). Results come back in
// completion order, not submission order.
func (p *Pool) Submit(tasks []Task) []TaskResult {
	if len(tasks) == 0 {
		return []TaskResult{}
	}

	scheduled := p.scheduler.Schedule(tasks)

	p.logger.Debug("submitting tasks", "total", len(scheduled), "scheduler", p.scheduler.Name())

	go func() {
		for _, task := range scheduled {
			select {
			case p.taskQueue <- task:
			case <-p.ctx.Done():
				return
			}
		}
	}()

	results := make([]TaskResult, 0, len(tasks))
	for i := 0; i < len(tasks); i++ {
		select {
		case result := <-p.results:
			results = append(results, result)
		case <-p.ctx.Done():
			p.logger.Warn("pool stopped while waiting for results")
			return results
		}
	}

	return results
}

// Stop shuts the pool down and waits for the workers.
func (p *Pool) Stop() {
	p.cancel()
	close(p.taskQueue)
	p.wg.Wait()
	close(p.results)
}
