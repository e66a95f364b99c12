package chain

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DecodeSignedTransaction turns the wire encoding of a signed transaction into
// raw bytes: 0x-prefixed hex for EVM chains, standard base64 for Solana.
func DecodeSignedTransaction(family Family, encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidTransaction)
	}

	switch family {
	case FamilyEVM:
		raw, err := hexutil.Decode(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
		}
		return raw, nil
	case FamilySolana:
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: unsupported family %q", ErrConfiguration, family)
	}
}
