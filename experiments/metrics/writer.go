package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"minimax/game"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const EvaluationsFile = "evaluations.csv"

var evaluationHeader = []string{
	"id", "time", "leaves_in", "root", "height", "value",
	"goroutines", "duration", "leaf_visits", "nodes", "spawned",
}

type EvaluationRecord struct {
	ID     uuid.UUID
	Time   time.Time
	Length int    // Length of the score sequence
	Value  string // Optimal value, formatted
	SearchMetric
}

// NewEvaluationRecord stamps a metric with a fresh ID and the current time.
func NewEvaluationRecord[T any](length int, value T, metric SearchMetric) EvaluationRecord {
	return EvaluationRecord{
		ID:           uuid.New(),
		Time:         time.Now().UTC(),
		Length:       length,
		Value:        game.FormatScore(value),
		SearchMetric: metric,
	}
}

type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Path() string {
	return filepath.Join(w.baseDir, EvaluationsFile)
}

// WriteEvaluations appends records to the evaluations file, writing the
// header first when the file is new.
func (w *Writer) WriteEvaluations(records []EvaluationRecord) error {
	path := w.Path()
	_, err := os.Stat(path)
	isNew := errors.Is(err, os.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open evaluations file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if isNew {
		err = writer.Write(evaluationHeader)
		if err != nil {
			return fmt.Errorf("failed to write evaluations header: %w", err)
		}
	}

	for _, record := range records {
		row := []string{
			record.ID.String(),
			record.Time.Format(time.RFC3339),
			strconv.Itoa(record.Length),
			record.Root.String(),
			strconv.Itoa(record.Height),
			record.Value,
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Spawned),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write evaluation row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush evaluations file: %w", err)
	}
	return nil
}
