package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Process-wide counters for the storefront's upstream traffic.
var (
	UpstreamRequests Counter
	UpstreamFailures Counter
	CacheHits        Counter
	CacheMisses      Counter
	Revalidations    Counter
)

// Snapshot returns the current counter values keyed by metric name.
func Snapshot() map[string]uint64 {
	return map[string]uint64{
		"upstream_requests": UpstreamRequests.Load(),
		"upstream_failures": UpstreamFailures.Load(),
		"cache_hits":        CacheHits.Load(),
		"cache_misses":      CacheMisses.Load(),
		"revalidations":     Revalidations.Load(),
	}
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
