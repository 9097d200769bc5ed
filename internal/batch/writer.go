package batch

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Writer emits results in the selected format. "jsonl" writes one JSON
// object per line as results arrive; "summary" counts outcomes and writes a
// single aggregate object on Close.
type Writer struct {
	out     *bufio.Writer
	format  string
	logger  *zerolog.Logger
	summary summaryStats
}

type summaryStats struct {
	Total        int     `json:"total"`
	Succeeded    int     `json:"succeeded"`
	Failed       int     `json:"failed"`
	AverageScore float64 `json:"average_quality_score"`

	scoreSum float64
}

func NewWriter(out io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	switch format {
	case "jsonl", "summary":
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	return &Writer{
		out:    bufio.NewWriter(out),
		format: format,
		logger: logger,
	}, nil
}

func (w *Writer) Write(result Result) error {
	w.summary.Total++
	if result.Error != "" {
		w.summary.Failed++
	} else {
		w.summary.Succeeded++
		if result.QualityMetrics != nil {
			w.summary.scoreSum += result.QualityMetrics.QualityScore
		}
	}

	if w.format != "jsonl" {
		return nil
	}

	line, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result %s: %w", result.ID, err)
	}

	if _, err := w.out.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write result %s: %w", result.ID, err)
	}

	return nil
}

func (w *Writer) Close() error {
	if w.format == "summary" {
		if w.summary.Succeeded > 0 {
			w.summary.AverageScore = w.summary.scoreSum / float64(w.summary.Succeeded)
		}
		line, err := json.Marshal(w.summary)
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		if _, err := w.out.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	return w.out.Flush()
}
