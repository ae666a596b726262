package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"log/slog"

	"github.com/thrackle-io/curve-estimator/internal/metrics"
	"github.com/thrackle-io/curve-estimator/pkg/curves"
	"golang.org/x/sync/errgroup"
)

// QuoteRequest names a curve operation and its arguments as decimal text.
type QuoteRequest struct {
	Op   string            `json:"op"`
	Args map[string]string `json:"args"`
}

// QuoteResult carries either the amount or the failure of one request.
type QuoteResult struct {
	Op     string `json:"op"`
	Amount string `json:"amount,omitempty"`
	Error  string `json:"error,omitempty"`
	Err    error  `json:"-"`
}

// QuoteService evaluates curve operations from the registry.
type QuoteService struct {
	BaseService
	metrics  *metrics.Metrics
	workers  int
	maxBatch int
}

// NewQuoteService constructs a QuoteService. workers bounds batch
// parallelism and maxBatch bounds the number of requests per batch.
func NewQuoteService(logger *slog.Logger, m *metrics.Metrics, workers, maxBatch int) *QuoteService {
	if workers < 1 {
		workers = 1
	}
	return &QuoteService{
		BaseService: BaseService{logger: logger},
		metrics:     m,
		workers:     workers,
		maxBatch:    maxBatch,
	}
}

// Quote evaluates the named operation with arguments keyed by name.
func (s *QuoteService) Quote(ctx context.Context, name string, args map[string]string) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	op, ok := curves.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}

	start := time.Now()
	out, err := op.EvaluateNamed(args)
	s.metrics.ObserveQuote(op.Name, start, err)
	if err != nil {
		s.logger.Debug("quote rejected", "op", op.Name, "err", err)
		return nil, err
	}
	s.logger.Debug("quote computed", "op", op.Name, "out", out.String())
	return out, nil
}

// QuoteBatch evaluates every request in parallel. A failing request is
// reported in its own result and does not affect the others.
func (s *QuoteService) QuoteBatch(ctx context.Context, reqs []QuoteRequest) ([]QuoteResult, error) {
	if len(reqs) > s.maxBatch {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(reqs), s.maxBatch)
	}

	results := make([]QuoteResult, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := QuoteResult{Op: req.Op}
			out, err := s.Quote(gctx, req.Op, req.Args)
			if err != nil {
				res.Err, res.Error = err, err.Error()
			} else {
				res.Amount = out.String()
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("batch computed", "size", len(reqs))
	return results, nil
}
