package chain

import "errors"

var (
	// ErrConfiguration: unknown chain key, missing testnet variant or an invalid catalog.
	ErrConfiguration = errors.New("chain configuration error")
	// ErrConnectivity: RPC endpoint empty, unreachable or returning a malformed response.
	ErrConnectivity = errors.New("chain rpc unavailable")
	// ErrTimeout: RPC call exceeded its deadline.
	ErrTimeout = errors.New("chain rpc timeout")
	// ErrInvalidAddress: address not well-formed for the chain family.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidTransaction: signed transaction bytes could not be decoded.
	ErrInvalidTransaction = errors.New("invalid signed transaction")
)
