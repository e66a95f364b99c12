package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

type evmClient struct {
	rpc *ethclient.Client
}

func dialEVM(ctx context.Context, rpcURL string) (*evmClient, error) {
	c, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w: dial evm rpc: %v", ErrConnectivity, err)
	}
	return &evmClient{rpc: c}, nil
}

func (c *evmClient) BlockNumber(ctx context.Context) (uint64, error) {
	return c.rpc.BlockNumber(ctx)
}

func (c *evmClient) Balance(ctx context.Context, address string) (*big.Int, error) {
	return c.rpc.BalanceAt(ctx, common.HexToAddress(address), nil)
}

func (c *evmClient) SendRawTransaction(ctx context.Context, raw []byte) (string, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	if err := c.rpc.SendTransaction(ctx, tx); err != nil {
		return "", err
	}
	return tx.Hash().Hex(), nil
}

func (c *evmClient) Close() {
	c.rpc.Close()
}
