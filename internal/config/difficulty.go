package config

// Progression types accepted in DifficultyConfig.Progression.Type.
const (
	ProgressByScore = "score"
	ProgressByTime  = "time"
	ProgressNone    = "none"
)

// DifficultyManager turns a score or tick count into a difficulty level
// between the configured initial level and 1.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for cfg. The initial level is
// clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = min(max(cfg.InitialLevel, 0), 1)
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled switches progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	if !d.cfg.Enabled {
		return false
	}
	switch d.cfg.Progression.Type {
	case ProgressByScore, ProgressByTime:
		return true
	}
	return false
}

// Level returns the difficulty for the given score and elapsed ticks.
// It climbs linearly from the initial level and reaches 1 at MaxAt.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	start := d.cfg.InitialLevel
	if !d.IsEnabled() {
		return start
	}

	progress := score
	if d.cfg.Progression.Type == ProgressByTime {
		progress = ticks
	}
	frac := float64(progress) / float64(max(d.cfg.Progression.MaxAt, 1))
	frac = min(max(frac, 0), 1)
	return start + frac*(1-start)
}

// Wait shortens a base waiting time as difficulty grows: at the top level
// it is divided by (1 + speedMultiplier).
func (d *DifficultyManager) Wait(base float64, score int, ticks int) float64 {
	factor := 1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
	if factor <= 0 {
		return base
	}
	return base / factor
}
