// Package metrics collects step timings for the headless runner.
package metrics

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Collector gathers step statistics. The zero value is ready to use.
type Collector struct {
	Steps          int64
	StepLatencySum int64 // nanoseconds
	StepLatencyMax int64
	Population     int64

	mu       sync.RWMutex
	lastStep time.Time
}

// Snapshot is the JSON view served on the stats endpoint.
type Snapshot struct {
	Steps         int64     `json:"steps"`
	AvgStepMicros float64   `json:"avg_step_us"`
	MaxStepMicros float64   `json:"max_step_us"`
	Population    int64     `json:"population"`
	LastStep      time.Time `json:"last_step"`
}

// RecordStep records one completed generation.
func (c *Collector) RecordStep(latency time.Duration, population int) {
	atomic.AddInt64(&c.Steps, 1)
	atomic.AddInt64(&c.StepLatencySum, int64(latency))
	for {
		cur := atomic.LoadInt64(&c.StepLatencyMax)
		if int64(latency) <= cur || atomic.CompareAndSwapInt64(&c.StepLatencyMax, cur, int64(latency)) {
			break
		}
	}
	atomic.StoreInt64(&c.Population, int64(population))

	c.mu.Lock()
	c.lastStep = time.Now()
	c.mu.Unlock()
}

// Snapshot returns the current values.
func (c *Collector) Snapshot() Snapshot {
	steps := atomic.LoadInt64(&c.Steps)
	s := Snapshot{
		Steps:         steps,
		MaxStepMicros: float64(atomic.LoadInt64(&c.StepLatencyMax)) / 1e3,
		Population:    atomic.LoadInt64(&c.Population),
	}
	if steps > 0 {
		s.AvgStepMicros = float64(atomic.LoadInt64(&c.StepLatencySum)) / float64(steps) / 1e3
	}
	c.mu.RLock()
	s.LastStep = c.lastStep
	c.mu.RUnlock()
	return s
}

// Handler serves the snapshot as JSON.
func (c *Collector) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(c.Snapshot())
	}
}
