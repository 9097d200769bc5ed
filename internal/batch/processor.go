package batch

import (
	"context"
	"sync"

	"github.com/Annapoorna04/HiperAI/internal/models"
	"github.com/Annapoorna04/HiperAI/internal/pipeline"
	"github.com/rs/zerolog"
)

// Result is one output line. Either JobDescription and QualityMetrics are
// set, or Error holds why the record failed.
type Result struct {
	ID             string                 `json:"id"`
	JobDescription string                 `json:"job_description,omitempty"`
	QualityMetrics *models.QualityMetrics `json:"quality_metrics,omitempty"`
	Error          string                 `json:"error,omitempty"`
}

// batchClientID keys all batch executions. The batch pipeline is wired
// without rate limiting, so the key only shows up in logs.
const batchClientID = "batch"

type Processor struct {
	pipeline *pipeline.Pipeline
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(pipe *pipeline.Pipeline, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		pipeline: pipe,
		workers:  workers,
		logger:   logger,
	}
}

// Process fans the records out over the worker pool. Result order is not
// guaranteed; match on ID.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan Result {
	in := make(chan InputRecord)
	out := make(chan Result)

	go func() {
		defer close(in)
		for _, record := range records {
			select {
			case in <- record:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range in {
				out <- p.process(ctx, record)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func (p *Processor) process(ctx context.Context, record InputRecord) Result {
	if record.Error != nil {
		return Result{
			ID:    record.Request.ID,
			Error: record.Error.Error(),
		}
	}

	generated, err := p.pipeline.Execute(ctx, batchClientID, record.Request.RoleDetails)
	if err != nil {
		p.logger.Error().
			Err(err).
			Str("id", record.Request.ID).
			Int("line", record.LineNumber).
			Msg("record failed")
		return Result{
			ID:    record.Request.ID,
			Error: err.Error(),
		}
	}

	return Result{
		ID:             record.Request.ID,
		JobDescription: generated.JobDescription,
		QualityMetrics: &generated.Metrics,
	}
}
