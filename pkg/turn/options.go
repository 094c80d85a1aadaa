package turn

const (
	DefaultLeftPenalty  = 60.0 // seconds
	DefaultRightPenalty = 30.0 // seconds
)

// PenaltyOptions hold the penalty magnitudes (in seconds) used when building a PenaltyTable
type PenaltyOptions struct {
	LeftPenalty  float64
	RightPenalty float64
}

// Create PenaltyOptions with the default penalties (left 60s, right 30s)
func MakePenaltyOptions() PenaltyOptions {
	return PenaltyOptions{LeftPenalty: DefaultLeftPenalty, RightPenalty: DefaultRightPenalty}
}

// Set the penalty for left turns and return new PenaltyOptions
func (po PenaltyOptions) SetLeftPenalty(seconds float64) PenaltyOptions {
	po.LeftPenalty = seconds
	return po
}

// Set the penalty for right turns and return new PenaltyOptions
func (po PenaltyOptions) SetRightPenalty(seconds float64) PenaltyOptions {
	po.RightPenalty = seconds
	return po
}

// Return the penalty for the given turn direction
func (po PenaltyOptions) Penalty(d Direction) float64 {
	switch d {
	case Left:
		return po.LeftPenalty
	case Right:
		return po.RightPenalty
	}
	return 0
}
