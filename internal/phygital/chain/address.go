package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

const solanaPublicKeyLength = 32

// ValidateAddress checks addr against the address format of family.
// EVM: 0x-prefixed 20-byte hex; mixed-case input must carry a valid EIP-55 checksum.
// Solana: base58 encoding of a 32-byte public key.
func ValidateAddress(family Family, addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	switch family {
	case FamilyEVM:
		return validateEVMAddress(addr)
	case FamilySolana:
		return validateSolanaAddress(addr)
	default:
		return fmt.Errorf("%w: unsupported family %q", ErrConfiguration, family)
	}
}

func validateEVMAddress(addr string) error {
	if !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		return fmt.Errorf("%w: %q is missing the 0x prefix", ErrInvalidAddress, addr)
	}
	if !common.IsHexAddress(addr) {
		return fmt.Errorf("%w: %q is not a 20-byte hex address", ErrInvalidAddress, addr)
	}
	body := addr[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) {
		if common.HexToAddress(addr).Hex() != "0x"+body {
			return fmt.Errorf("%w: %q has a bad checksum", ErrInvalidAddress, addr)
		}
	}
	return nil
}

func validateSolanaAddress(addr string) error {
	b, err := base58.Decode(addr)
	if err != nil {
		return fmt.Errorf("%w: %q is not base58", ErrInvalidAddress, addr)
	}
	if len(b) != solanaPublicKeyLength {
		return fmt.Errorf("%w: %q decodes to %d bytes, want %d", ErrInvalidAddress, addr, len(b), solanaPublicKeyLength)
	}
	return nil
}
