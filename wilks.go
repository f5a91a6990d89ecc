package fitnesstools

import (
	"math"

	"github.com/misterclayt0n/fitnesstools/internal/utils"
)

// Wilks computes the Wilks coefficient for a lifter using the original
// formula. Bodyweight is in kilograms.
//
// https://en.wikipedia.org/wiki/Wilks_coefficient
func Wilks(sex Sex, bodyweight float64) float64 {
	return 500.0 / utils.Poly5(wilksCoefficients(sex), bodyweight)
}

// Wilks2020 computes the Wilks coefficient for a lifter using the updated
// 2020 formula. Bodyweight is in kilograms.
func Wilks2020(sex Sex, bodyweight float64) float64 {
	return 600.0 / utils.Poly5(wilks2020Coefficients(sex), bodyweight)
}

var (
	wilksMale = [6]float64{
		-216.0475144,
		16.2606339,
		-0.002388645,
		-0.00113732,
		7.01863 * e6,
		-1.291 * e8,
	}
	wilksFemale = [6]float64{
		594.31747775582,
		-27.23842536447,
		0.82112226871,
		-0.00930733913,
		4.731582 * e5,
		-9.054 * e8,
	}

	wilks2020Male = [6]float64{
		47.46178854,
		8.472061379,
		0.07369410346,
		-0.001395833811,
		7.07665973070743 * e6,
		-1.20804336482315 * e8,
	}
	wilks2020Female = [6]float64{
		-125.4255398,
		13.71219419,
		-0.03307250631,
		-0.001050400051,
		9.38773881462799 * e5,
		-2.3334613884954 * e8,
	}
)

// Scale factors for the published constants, which are written as
// mantissa × 10^-k.
var (
	e5 = math.Pow10(-5)
	e6 = math.Pow10(-6)
	e8 = math.Pow10(-8)
)

func wilksCoefficients(sex Sex) [6]float64 {
	if sex == Female {
		return wilksFemale
	}
	return wilksMale
}

func wilks2020Coefficients(sex Sex) [6]float64 {
	if sex == Female {
		return wilks2020Female
	}
	return wilks2020Male
}
