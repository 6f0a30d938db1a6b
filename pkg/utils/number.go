package utils

import "math"

// RoundCents arredonda um valor monetário para centavos, eliminando o resíduo de somas em float
func RoundCents(value float64) float64 {
	if value == 0 {
		return 0
	}
	return math.Round(value*100) / 100
}
