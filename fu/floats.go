package fu

func Mean(a []float64) float64 {
	var c float64
	for _, x := range a {
		c += x
	}
	return c / float64(len(a))
}

// Indmaxd returns the index of the maximal value
func Indmaxd(a []float64) int {
	j := 0
	for i := 1; i < len(a); i++ {
		if a[i] > a[j] {
			j = i
		}
	}
	return j
}
