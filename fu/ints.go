package fu

// Fnzi returns the first non-zero integer
func Fnzi(a ...int) int {
	for _, x := range a {
		if x != 0 {
			return x
		}
	}
	return 0
}

func Maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}
