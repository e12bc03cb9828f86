// internal/platform/workerpool/schedulers.go
package workerpool

import "sort"

// FIFOScheduler keeps the original batch order. The default: analysis
// tasks are uniform enough that reordering buys nothing.
type FIFOScheduler struct{}

// NewFIFOScheduler creates a FIFO scheduler.
func NewFIFOScheduler() *FIFOScheduler {
	return &FIFOScheduler{}
}

// Schedule returns the tasks in submission order.
func (s *FIFOScheduler) Schedule(tasks []Task) []Task {
	scheduled := make([]Task, len(tasks))
	copy(scheduled, tasks)
	return scheduled
}

// Name returns the scheduler name.
func (s *FIFOScheduler) Name() string {
	return "fifo"
}

// PriorityScheduler orders tasks by priority (highest first), breaking
// ties with the lighter task so fast work drains first.
type PriorityScheduler struct{}

// NewPriorityScheduler creates a priority scheduler.
func NewPriorityScheduler() *PriorityScheduler {
	return &PriorityScheduler{}
}

// Schedule orders by priority descending, then weight ascending.
func (s *PriorityScheduler) Schedule(tasks []Task) []Task {
	scheduled := make([]Task, len(tasks))
	copy(scheduled, tasks)

	sort.SliceStable(scheduled, func(i, j int) bool {
		if scheduled[i].Priority() != scheduled[j].Priority() {
			return scheduled[i].Priority() > scheduled[j].Priority()
		}
		return scheduled[i].Weight() < scheduled[j].Weight()
	})

	return scheduled
}

// Name returns the scheduler name.
func (s *PriorityScheduler) Name() string {
	return "priority"
}
