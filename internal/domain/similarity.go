package domain

// SimilarChars counts the characters a and b have in common: the longest
// common substring plus, recursively, the common characters to its left and
// to its right.
func SimilarChars(a, b string) int {
	return similarRunes([]rune(a), []rune(b))
}

// SimilarityPercent is 2*common/(len(a)+len(b))*100. Two empty strings score 0.
func SimilarityPercent(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 0
	}
	return float64(similarRunes(ra, rb)*2) * 100 / float64(total)
}

func similarRunes(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// First longest common substring wins on ties.
	posA, posB, longest := 0, 0, 0
	for i := range a {
		for j := range b {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > longest {
				posA, posB, longest = i, j, k
			}
		}
	}
	if longest == 0 {
		return 0
	}

	return longest +
		similarRunes(a[:posA], b[:posB]) +
		similarRunes(a[posA+longest:], b[posB+longest:])
}
