package utils

// Poly5 evaluates c0 + c1*x + c2*x^2 + c3*x^3 + c4*x^4 + c5*x^5.
//
// Terms are summed in ascending order. The explicit float64 conversion keeps
// the compiler from fusing the multiply and add, so results are identical on
// every architecture.
func Poly5(coefficients [6]float64, x float64) float64 {
	sum := 0.0
	power := 1.0
	for _, c := range coefficients {
		sum += float64(c * power)
		power *= x
	}

	return sum
}
