// meta/meta.go
package meta

// SAMPLE_SCORES is the 8 leaf tree evaluated when no scores are given.
var SAMPLE_SCORES = []float64{3, 5, 2, 9, 12, 5, 23, 23}

// GO_ROUTINES defines the default number of goroutines for evaluation.
const GO_ROUTINES = 1

// ROOT_ROLE defines who moves first.
const ROOT_ROLE = "max"

const LAYOUT = "tree"
