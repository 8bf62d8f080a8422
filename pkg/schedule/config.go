// Package schedule is the planning engine: it resolves the current timetable
// block from the clock, selects and ranks the due topics that fit it, and
// applies review outcomes to reschedule topics.
package schedule

// Config collects the tuning constants of the engine. They are deliberately
// injected rather than hardcoded so the arithmetic stays adjustable from the
// config file.
type Config struct {
	// EasyStep is the days-per-level multiplier after an easy review.
	EasyStep int
	// EasyBase is the flat day offset added after an easy review.
	EasyBase int
	// NormalDelay is the flat delay in days after a normal review.
	NormalDelay int
	// MinTaskMinutes is the minimum productive slice of a block; it bounds
	// how many tasks fit into a timed block.
	MinTaskMinutes int
	// MaxTasksFallback caps the task list when the block has no duration
	// (untimed buffers forced into study mode).
	MaxTasksFallback int
	// FallbackTaskMinutes is the suggested minutes per task when the block
	// has no duration.
	FallbackTaskMinutes int
}

// DefaultConfig returns the tuning currently in use.
func DefaultConfig() Config {
	return Config{
		EasyStep:            5,
		EasyBase:            3,
		NormalDelay:         3,
		MinTaskMinutes:      25,
		MaxTasksFallback:    5,
		FallbackTaskMinutes: 30,
	}
}
