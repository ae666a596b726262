package eth

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// contract UniswapV2Pair is IUniswapV2Pair, UniswapV2ERC20 {
//     address public factory;             // slot 5
//     address public token0;              // slot 6
//     address public token1;              // slot 7
//
//     uint112 private reserve0;           // slot 8, packed
//     uint112 private reserve1;           // slot 8, packed
//     uint32  private blockTimestampLast; // slot 8, packed
const (
	slotToken0   = 6
	slotToken1   = 7
	slotReserves = 8
)

// PairState is a snapshot of a pair's tokens and reserves at Block.
type PairState struct {
	Block    *big.Int
	Token0   common.Address
	Token1   common.Address
	Reserve0 *big.Int
	Reserve1 *big.Int
}

// PairReader loads pair state straight from contract storage.
type PairReader struct {
	client *ethclient.Client
}

func NewPairReader(client *ethclient.Client) *PairReader {
	return &PairReader{client: client}
}

// Pair reads the pair at the latest block.
func (r *PairReader) Pair(ctx context.Context, pool common.Address) (*PairState, error) {
	bn, err := r.client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("block number: %w", err)
	}
	state := &PairState{Block: new(big.Int).SetUint64(bn)}

	b0, err := r.readSlot(ctx, pool, state.Block, slotToken0)
	if err != nil {
		return nil, err
	}
	b1, err := r.readSlot(ctx, pool, state.Block, slotToken1)
	if err != nil {
		return nil, err
	}
	br, err := r.readSlot(ctx, pool, state.Block, slotReserves)
	if err != nil {
		return nil, err
	}

	state.Token0 = common.BytesToAddress(b0)
	state.Token1 = common.BytesToAddress(b1)
	state.Reserve0, state.Reserve1 = parseReserves(br)
	return state, nil
}

func (r *PairReader) readSlot(ctx context.Context, pool common.Address, blockNum *big.Int, slot uint64) ([]byte, error) {
	key := common.BigToHash(new(big.Int).SetUint64(slot))
	b, err := r.client.StorageAt(ctx, pool, key, blockNum)
	if err != nil {
		return nil, fmt.Errorf("storageAt slot %d (pool %s, block %s): %w",
			slot, pool.Hex(), blockNum.String(), err)
	}
	return b, nil
}

// parseReserves unpacks two uint112 reserves from the 32-byte storage word:
//
//	[ 32 bits timestamp | 112 bits reserve1 | 112 bits reserve0 ]
//
// Values are big-endian within the 256-bit word.
func parseReserves(b []byte) (reserve0, reserve1 *big.Int) {
	v := new(big.Int).SetBytes(b)
	one := big.NewInt(1)
	mask112 := new(big.Int).Sub(new(big.Int).Lsh(one, 112), one)

	reserve0 = new(big.Int).And(v, mask112)
	tmp := new(big.Int).Rsh(v, 112)
	reserve1 = new(big.Int).And(tmp, mask112)
	return
}
