package filament

// The danger monitor guards the map against hash-flooding. A crafted header
// set can only degrade lookups by driving probe distances up; the monitor
// watches the worst distance seen on the insert path and escalates through
// three states:
//
//	Green  - normal operation.
//	Yellow - a probe crossed the lower threshold. Advisory only; no
//	         structural change.
//	Red    - a probe crossed the upper threshold. The map immediately
//	         draws a fresh seed and rehashes every live entry, then the
//	         monitor resets to Green.
//
// State is per map instance, never process-global, so tests can pin a seed
// and assert exact transitions without cross-test interference.

type dangerState uint8

const (
	dangerGreen dangerState = iota
	dangerYellow
	dangerRed
)

// Default escalation thresholds, in probe-sequence slots. Overridable
// through Tuning for tests that need to force transitions.
const (
	// DefaultYellowThreshold is the probe distance that moves the
	// monitor Green -> Yellow.
	DefaultYellowThreshold = 128

	// DefaultRedThreshold is the probe distance that moves the monitor
	// Yellow -> Red and triggers a defensive rehash. A healthy table
	// never probes anywhere near this far at our load factor.
	DefaultRedThreshold = 512
)

type danger struct {
	state    dangerState
	maxProbe int // worst distance observed since the last reset
	yellowAt int
	redAt    int
}

// observe records a probe distance seen while inserting and reports
// whether the map must rehash now. Called only from the insert path.
//
// Allocation behavior: 0 allocs/op
func (d *danger) observe(dist int) (rehash bool) {
	if dist <= d.maxProbe {
		return false
	}
	d.maxProbe = dist

	switch {
	case dist >= d.redAt:
		d.state = dangerRed
		return true
	case dist >= d.yellowAt:
		if d.state == dangerGreen {
			d.state = dangerYellow
		}
	}
	return false
}

// reset returns the monitor to Green after a defensive rehash or a map
// clear.
func (d *danger) reset() {
	d.state = dangerGreen
	d.maxProbe = 0
}
