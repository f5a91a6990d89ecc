package fitnesstools

// Formula selects the rep-max relationship used to convert between a set of
// n reps and an estimated one-rep max.
type Formula int

const (
	Epley Formula = iota
	Brzycki
	Adams
	Baechle
	// Average is the mean of the four formulas above.
	Average
)

// Reps outside this range are clamped by Estimated1RM and EstimatedNRM.
const (
	minClampedReps = 0.0
	maxClampedReps = 12.0
)

// Estimated1RM projects the one-rep max from a set of reps at weightLifted.
// Reps are clamped to [0, 12]. The result is in the unit of weightLifted.
func Estimated1RM(weightLifted, reps float64, formula Formula) float64 {
	return weightLifted * formula.Factor(clampReps(reps))
}

// EstimatedNRM is the inverse of Estimated1RM: the weight that can be lifted
// for reps repetitions given a one-rep max. Reps are clamped to [0, 12].
func EstimatedNRM(e1rm, reps float64, formula Formula) float64 {
	return e1rm / formula.Factor(clampReps(reps))
}

// Factor returns the multiplier that turns the weight of a set of reps into
// an estimated one-rep max.
func (f Formula) Factor(reps float64) float64 {
	switch f {
	case Epley:
		return 1.0 + reps/30.0
	case Brzycki:
		return 36.0 / (37.0 - reps)
	case Adams:
		return 1.0 / (1.0 - 0.02*reps)
	case Baechle:
		return 1.0 + 0.033*reps
	default:
		return (Epley.Factor(reps) +
			Brzycki.Factor(reps) +
			Adams.Factor(reps) +
			Baechle.Factor(reps)) / 4.0
	}
}

// MaxReps returns how many reps can theoretically be done at the given
// fraction of the one-rep max.
//
// For Average this is the mean of the four inverses, which is not the same
// as inverting the mean factor.
func (f Formula) MaxReps(fraction float64) float64 {
	switch f {
	case Epley:
		return (1.0/fraction - 1.0) * 30.0
	case Brzycki:
		return 37.0 - fraction*36.0
	case Adams:
		return (1.0 - fraction) / 0.02
	case Baechle:
		return (1.0/fraction - 1.0) / 0.033
	default:
		return (Epley.MaxReps(fraction) +
			Brzycki.MaxReps(fraction) +
			Adams.MaxReps(fraction) +
			Baechle.MaxReps(fraction)) / 4.0
	}
}

// RIR returns the reps left in reserve after doing reps at the given
// fraction of the one-rep max. Inputs are not clamped.
func (f Formula) RIR(fraction, reps float64) float64 {
	return f.MaxReps(fraction) - reps
}

// RPE converts RIR to the 1-10 rating of perceived exertion.
func (f Formula) RPE(fraction, reps float64) float64 {
	return 10.0 - f.RIR(fraction, reps)
}

// FractionAtRepsAndRPE returns the fraction of the one-rep max that makes a
// set of reps land on the given RPE.
func (f Formula) FractionAtRepsAndRPE(reps, rpe float64) float64 {
	maxReps := reps + (10.0 - rpe)

	return 1.0 / f.Factor(maxReps)
}

// EstimatedSetRPE rates a set that was just performed. It is the same value
// as RPE.
func (f Formula) EstimatedSetRPE(fraction, reps float64) float64 {
	return 10.0 - (f.MaxReps(fraction) - reps)
}

func clampReps(reps float64) float64 {
	return min(max(reps, minClampedReps), maxClampedReps)
}
