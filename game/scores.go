package game

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrInvalidRole  = errors.New("game: role must be max or min")
	ErrInvalidScore = errors.New("game: score must be a finite number")
	ErrNoScores     = errors.New("game: score sequence is empty")
)

// ParseScores reads leaf scores separated by commas, semicolons or whitespace.
func ParseScores(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, ErrNoScores
	}

	scores := make([]float64, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: score %d %q", ErrInvalidScore, i, field)
		}
		// NaN and infinities break the total order the evaluator relies on
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: score %d %q", ErrInvalidScore, i, field)
		}
		scores = append(scores, v)
	}
	return scores, nil
}

// LoadScores reads a score file in the same format as ParseScores.
func LoadScores(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scores file: %w", err)
	}
	scores, err := ParseScores(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse scores file %s: %w", path, err)
	}
	return scores, nil
}

// FormatScore prints floating point scores in plain decimal notation, never
// in exponent form; other types print with %v.
func FormatScore[T any](v T) string {
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}
