package artifacts

import (
	"sync"
	"time"

	"github.com/youruser/cardforge/internal/logging"
	"github.com/youruser/cardforge/internal/util"
)

// Janitor deletes files after a delay. Each path has at most one pending
// deletion; scheduling it again restarts the clock.
type Janitor struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	remove  func(path string) error
}

func NewJanitor() *Janitor {
	return &Janitor{timers: map[string]*time.Timer{}, remove: util.RemoveIfExists}
}

// Schedule deletes path once after has elapsed.
func (j *Janitor) Schedule(path string, after time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stopped {
		return
	}
	if t, ok := j.timers[path]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(after, func() {
		j.mu.Lock()
		if j.timers[path] != t {
			j.mu.Unlock()
			return
		}
		delete(j.timers, path)
		j.mu.Unlock()

		if err := j.remove(path); err != nil {
			logging.Error("artifact cleanup failed", "path", path, "error", err)
			return
		}
		logging.Debug("artifact expired", "path", path)
	})
	j.timers[path] = t
}

// Pending returns the number of scheduled deletions.
func (j *Janitor) Pending() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.timers)
}

// Stop cancels every pending deletion and refuses new ones. Files stay on
// disk.
func (j *Janitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	for path, t := range j.timers {
		t.Stop()
		delete(j.timers, path)
	}
	j.stopped = true
}
