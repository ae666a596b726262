package service

import (
	"context"
	"math/big"

	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/thrackle-io/curve-estimator/internal/eth"
	"github.com/thrackle-io/curve-estimator/pkg/curves"
)

// PairSource loads the current state of a pair contract.
type PairSource interface {
	Pair(ctx context.Context, pool common.Address) (*eth.PairState, error)
}

// EstimateService quotes live Uniswap V2 style pairs by reading their
// reserves on-chain.
type EstimateService struct {
	BaseService
	pairs PairSource
}

// NewEstimateService constructs an EstimateService using the provided logger
// and pair source.
func NewEstimateService(logger *slog.Logger, pairs PairSource) *EstimateService {
	return &EstimateService{
		BaseService: BaseService{logger: logger},
		pairs:       pairs,
	}
}

// Estimate computes the expected output amount for swapping amountIn of src to
// dst in the provided pool at the latest block. It validates the token pair,
// reads reserves and applies the constant-product curve net of the pair fee.
func (e *EstimateService) Estimate(ctx context.Context, pool, src, dst common.Address, amountIn *big.Int) (*big.Int, error) {
	e.logger.Debug("estimating swap", "pool", pool.Hex(), "src", src.Hex(), "dst", dst.Hex(), "in", amountIn.String())

	if src == dst {
		return nil, ErrSameToken
	}

	state, err := e.pairs.Pair(ctx, pool)
	if err != nil {
		return nil, err
	}

	var reserveIn, reserveOut *big.Int
	switch {
	case src == state.Token0 && dst == state.Token1:
		reserveIn, reserveOut = state.Reserve0, state.Reserve1
	case src == state.Token1 && dst == state.Token0:
		reserveIn, reserveOut = state.Reserve1, state.Reserve0
	default:
		return nil, ErrPairMismatch
	}

	if reserveIn.Sign() == 0 || reserveOut.Sign() == 0 {
		return nil, ErrEmptyReserves
	}

	out, err := curves.ConstantProductAmountOutWithFee(reserveIn, reserveOut, amountIn, curves.PairFeeBps)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("amount out computed", "block", state.Block.String(), "out", out.String())
	return out, nil
}
