package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/types"
)

type solanaClient struct {
	rpc *client.Client
}

func dialSolana(rpcURL string) *solanaClient {
	return &solanaClient{rpc: client.NewClient(rpcURL)}
}

// BlockNumber reports the current slot.
func (c *solanaClient) BlockNumber(ctx context.Context) (uint64, error) {
	return c.rpc.GetSlot(ctx)
}

func (c *solanaClient) Balance(ctx context.Context, address string) (*big.Int, error) {
	lamports, err := c.rpc.GetBalance(ctx, address)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(lamports), nil
}

func (c *solanaClient) SendRawTransaction(ctx context.Context, raw []byte) (string, error) {
	tx, err := types.TransactionDeserialize(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	return c.rpc.SendTransaction(ctx, tx)
}

func (c *solanaClient) Close() {}
