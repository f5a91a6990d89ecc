// Package fitnesstools is a library of math utilities used in strength
// training:
//
//   - Powerlifting ratings: bodyweight-normalizing coefficients (Wilks and
//     Wilks 2020).
//   - 1RM estimators: converting a set of n reps into an estimated one-rep
//     max and back, using the Epley, Brzycki, Adams and Baechle formulas or
//     their average.
//   - Set difficulty: reps in reserve, RPE and the load that matches a
//     given RPE.
//
// Every function is pure and safe for concurrent use. None of them validate
// their inputs: out-of-range values produce whatever the arithmetic yields,
// including ±Inf and NaN.
package fitnesstools

// Sex selects the coefficient table of the bodyweight formulas.
type Sex int

const (
	Male Sex = iota
	Female
)
