// Package batch reads role-description records from a JSONL stream, runs
// them through the guardrail pipeline with a worker pool, and writes the
// results.
package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Request is one input line: an identifier plus the free-text role details.
type Request struct {
	ID          string `json:"id"`
	RoleDetails string `json:"role_details"`
}

// InputRecord is a parsed line. Error is set when the line was not valid
// JSON; LineNumber points back at the source file for diagnostics.
type InputRecord struct {
	LineNumber int
	Request    Request
	Error      error
}

type Reader struct {
	reader io.Reader
	logger *zerolog.Logger
}

func NewReader(reader io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		reader: reader,
		logger: logger,
	}
}

// ReadAll streams records line by line. Blank lines are skipped but still
// counted, so reported line numbers match the file. The channel closes when
// the input is exhausted or the context is canceled.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.reader)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			if err := json.Unmarshal([]byte(line), &record.Request); err != nil {
				record.Error = fmt.Errorf("line %d: invalid JSON: %w", lineNumber, err)
			}

			select {
			case out <- record:
			case <-ctx.Done():
				r.logger.Warn().Int("line", lineNumber).Msg("reader stopped by context")
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("failed reading input")
		}
	}()

	return out
}
