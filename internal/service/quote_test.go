package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrackle-io/curve-estimator/internal/metrics"
	"github.com/thrackle-io/curve-estimator/pkg/curves"
)

func newQuoteService(maxBatch int) *QuoteService {
	return NewQuoteService(discardLogger(), metrics.NewMetrics(prometheus.NewRegistry()), 4, maxBatch)
}

func TestQuote(t *testing.T) {
	svc := newQuoteService(10)

	out, err := svc.Quote(context.Background(), "constant-product-amount-out", map[string]string{"x": "1000000", "y": "1000000", "x_in": "1000"})
	require.NoError(t, err)
	assert.Equal(t, "999", out.String())

	_, err = svc.Quote(context.Background(), "bogus", nil)
	assert.ErrorIs(t, err, ErrUnknownOperation)

	_, err = svc.Quote(context.Background(), "constant-product-amount-out", map[string]string{"x": "0", "y": "1", "x_in": "0"})
	assert.ErrorIs(t, err, curves.ErrArithmeticDomain)
}

func TestQuoteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newQuoteService(10).Quote(ctx, "tracker-forward", map[string]string{"tracker": "0", "x_in": "1"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQuoteBatchIsolatesFailures(t *testing.T) {
	svc := newQuoteService(100)

	reqs := []QuoteRequest{
		{Op: "tracker-forward", Args: map[string]string{"tracker": "0", "x_in": "100"}},
		{Op: "constant-product-pro-rata", Args: map[string]string{"x": "1", "y": "0", "y_in": "1"}},
		{Op: "linear-point", Args: map[string]string{"m": "2", "decimals": "0", "b": "10", "x": "5", "y_in_atto": "0"}},
		{Op: "nope"},
	}
	for i := 0; i < 40; i++ {
		reqs = append(reqs, QuoteRequest{Op: "constant-product-pro-rata", Args: map[string]string{"x": "1000000", "y": "2000000", "y_in": strconv.Itoa(i * 2)}})
	}

	results, err := svc.QuoteBatch(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	assert.Equal(t, "1000", results[0].Amount)
	assert.ErrorIs(t, results[1].Err, curves.ErrArithmeticDomain)
	assert.NotEmpty(t, results[1].Error)
	assert.Equal(t, "20", results[2].Amount)
	assert.ErrorIs(t, results[3].Err, ErrUnknownOperation)
	for i := 0; i < 40; i++ {
		assert.Equal(t, strconv.Itoa(i), results[4+i].Amount, "request %d", 4+i)
	}
}

func TestQuoteBatchTooLarge(t *testing.T) {
	_, err := newQuoteService(1).QuoteBatch(context.Background(), make([]QuoteRequest, 2))
	assert.True(t, errors.Is(err, ErrBatchTooLarge))
}

func TestQuoteBatchWithoutWorkersStillRuns(t *testing.T) {
	svc := NewQuoteService(discardLogger(), nil, 0, 10)
	reqs := []QuoteRequest{
		{Op: "tracker-forward", Args: map[string]string{"tracker": "0", "x_in": "100"}},
		{Op: "constant-product-pro-rata", Args: map[string]string{"x": "1000000", "y": "2000000", "y_in": "500"}},
	}

	done := make(chan []QuoteResult, 1)
	go func() {
		results, err := svc.QuoteBatch(context.Background(), reqs)
		assert.NoError(t, err)
		done <- results
	}()

	select {
	case results := <-done:
		require.Len(t, results, 2)
		assert.Equal(t, "1000", results[0].Amount)
		assert.Equal(t, "250", results[1].Amount)
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not complete with zero workers")
	}
}
