package build

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

var demoPipelines = []struct {
	id, name string
}{
	{"api-main", "api / main"},
	{"web-main", "web / main"},
	{"web-release", "web / release-2.4"},
	{"worker-main", "worker / main"},
	{"infra-plan", "infra / terraform plan"},
	{"mobile-ios", "mobile / ios nightly"},
	{"mobile-android", "mobile / android nightly"},
	{"docs-site", "docs / site"},
}

var demoAuthors = []string{"alice", "bob", "carol", "dave", "erin"}

var demoComments = []string{
	"Bump dependencies",
	"Fix flaky integration test",
	"Add retry to webhook handler",
	"Refactor auth middleware",
	"Tune cache eviction",
	"Update release notes",
}

// DemoSource simulates a handful of pipelines that start, run and finish on
// their own. It is deterministic for a given seed and clock, which keeps the
// UI tests stable.
type DemoSource struct {
	mu     sync.Mutex
	now    func() time.Time
	rng    *rand.Rand
	builds []Record
}

// NewDemoSource seeds the simulation. A nil clock means time.Now.
func NewDemoSource(seed uint64, now func() time.Time) *DemoSource {
	if now == nil {
		now = time.Now
	}
	d := &DemoSource{
		now: now,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	start := now()
	for i, p := range demoPipelines {
		d.builds = append(d.builds, Record{
			ID:             p.id,
			Name:           p.name,
			Status:         d.finishedStatus(),
			LocalStartTime: start.Add(-time.Duration(i*7+3) * time.Minute),
			Duration:       fmt.Sprintf("%dm%02ds", 1+d.rng.IntN(9), d.rng.IntN(60)),
			RequestedBy:    demoAuthors[d.rng.IntN(len(demoAuthors))],
			Comment:        demoComments[d.rng.IntN(len(demoComments))],
			URL:            "https://ci.example.com/" + p.id,
		})
	}
	return d
}

func (d *DemoSource) Name() string { return "demo" }

// Fetch advances the simulation one step and returns a fresh copy.
func (d *DemoSource) Fetch(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for i := range d.builds {
		b := &d.builds[i]
		switch {
		case b.IsActive():
			if b.Status == StatusQueued {
				b.Status = StatusBuilding
			} else if d.rng.IntN(3) == 0 {
				b.Status = d.finishedStatus()
				b.Duration = formatDemoDuration(now.Sub(b.LocalStartTime))
			}
		case d.rng.IntN(6) == 0:
			b.Status = StatusQueued
			b.LocalStartTime = now
			b.Duration = ""
			b.RequestedBy = demoAuthors[d.rng.IntN(len(demoAuthors))]
			b.Comment = demoComments[d.rng.IntN(len(demoComments))]
		}
	}

	out := make([]Record, len(d.builds))
	copy(out, d.builds)
	return out, nil
}

func (d *DemoSource) finishedStatus() Status {
	if d.rng.IntN(4) == 0 {
		return StatusFailed
	}
	return StatusPassed
}

func formatDemoDuration(dur time.Duration) string {
	if dur < 0 {
		dur = 0
	}
	return fmt.Sprintf("%dm%02ds", int(dur.Minutes()), int(dur.Seconds())%60)
}
