package player

// TaskID identifies a scheduled task.
type TaskID uint64

type task struct {
	id  TaskID
	due uint64
	fn  func()
}

// Scheduler runs one-shot tasks on a later frame. A task scheduled while the frame counter is N
// runs in RunDue once the counter reaches N+1, i.e. at the start of the next frame.
type Scheduler struct {
	tick  uint64
	next  TaskID
	tasks []task
}

// NewScheduler returns an empty scheduler at tick 0.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Tick returns the current frame counter.
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Schedule queues fn for the next frame.
func (s *Scheduler) Schedule(fn func()) TaskID {
	s.next++
	s.tasks = append(s.tasks, task{id: s.next, due: s.tick + 1, fn: fn})
	return s.next
}

// Cancel drops a pending task. Unknown or finished ids are ignored.
func (s *Scheduler) Cancel(id TaskID) {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	s.tasks = nil
}

// Pending returns the number of tasks not yet run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// RunDue runs every task whose frame has come, in scheduling order. Tasks scheduled from inside
// a running task wait for the following frame.
func (s *Scheduler) RunDue() int {
	var due []task
	keep := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= s.tick {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	s.tasks = keep
	for _, t := range due {
		if t.fn != nil {
			t.fn()
		}
	}
	return len(due)
}

// Advance moves to the next frame.
func (s *Scheduler) Advance() {
	s.tick++
}
