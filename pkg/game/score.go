package game

// Points awarded for the number of lines removed by a single lock.
var lineScores = [...]int{0, 100, 300, 500, 800}

func LineScore(lines int) int {
	if lines < 0 {
		return 0
	} else if lines >= len(lineScores) {
		return lineScores[len(lineScores)-1]
	}

	return lineScores[lines]
}
