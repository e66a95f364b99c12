package chain

import (
	"context"
	"fmt"
	"math/big"
)

// Client is a JSON-RPC connection to one network.
type Client interface {
	// BlockNumber returns the current block height (the slot on Solana).
	BlockNumber(ctx context.Context) (uint64, error)
	// Balance returns the native balance of address in base units.
	Balance(ctx context.Context, address string) (*big.Int, error)
	// SendRawTransaction broadcasts an already-signed transaction and returns its hash or signature.
	SendRawTransaction(ctx context.Context, raw []byte) (string, error)
	Close()
}

// Dialer opens a Client for a network config.
type Dialer interface {
	Dial(ctx context.Context, cfg Config) (Client, error)
}

// FamilyDialer picks the RPC client implementation by chain family.
type FamilyDialer struct{}

func (FamilyDialer) Dial(ctx context.Context, cfg Config) (Client, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("%w: no rpc url configured for %s", ErrConnectivity, cfg.Name)
	}
	switch cfg.Family {
	case FamilyEVM:
		c, err := dialEVM(ctx, cfg.RPCURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case FamilySolana:
		return dialSolana(cfg.RPCURL), nil
	default:
		return nil, fmt.Errorf("%w: unsupported family %q", ErrConfiguration, cfg.Family)
	}
}
