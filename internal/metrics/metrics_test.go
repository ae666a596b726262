package metrics

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/thrackle-io/curve-estimator/pkg/curves"
)

func TestObserveQuote(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveQuote("tracker-forward", time.Now(), nil)
	m.ObserveQuote("tracker-forward", time.Now(), nil)
	_, err := curves.ConstantProductAmountOut(big.NewInt(0), big.NewInt(1), big.NewInt(0))
	m.ObserveQuote("constant-product-amount-out", time.Now(), err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.quotesTotal.WithLabelValues("tracker-forward", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotesTotal.WithLabelValues("constant-product-amount-out", ResultDomainError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.quoteDuration))
}

func TestClassify(t *testing.T) {
	_, parseErr := curves.ParseAmount("x", "-1")
	_, stateErr := curves.TrackerAmountOutForward(new(big.Int).Lsh(big.NewInt(1), 70), big.NewInt(1))

	assert.Equal(t, ResultOK, Classify(nil))
	assert.Equal(t, ResultInputError, Classify(parseErr))
	assert.Equal(t, ResultCurveState, Classify(stateErr))
	assert.Equal(t, ResultUnknownError, Classify(errors.New("boom")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveQuote("x", time.Now(), nil)
}
