package chain

import (
	"fmt"
	"net/url"
	"strings"
)

// Family groups chains that share an address format and RPC dialect.
type Family string

const (
	FamilyEVM    Family = "evm"
	FamilySolana Family = "solana"
)

func (f Family) Valid() bool {
	return f == FamilyEVM || f == FamilySolana
}

type Currency struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals int    `json:"decimals" yaml:"decimals"`
}

// Config describes one network. A mainnet Config may carry its testnet variant;
// the variant itself never has a nested Testnet.
type Config struct {
	Key             string   `json:"key"`
	Name            string   `json:"name"`
	Family          Family   `json:"family"`
	ChainID         uint64   `json:"chain_id"`
	RPCURL          string   `json:"rpc_url"`
	Currency        Currency `json:"native_currency"`
	ContractAddress string   `json:"contract_address"`
	ExplorerURL     string   `json:"explorer_url"`
	IsTestnet       bool     `json:"is_testnet"`
	Testnet         *Config  `json:"testnet,omitempty"`
}

// Deployed reports whether a contract address is configured.
func (c Config) Deployed() bool {
	return c.ContractAddress != ""
}

// RedactedRPCURL hides credentials embedded in the RPC URL: userinfo, query
// string and every path segment other than an API version such as "v2".
func (c Config) RedactedRPCURL() string {
	if c.RPCURL == "" {
		return ""
	}
	u, err := url.Parse(c.RPCURL)
	if err != nil || u.Host == "" {
		return "REDACTED"
	}
	u.User = nil
	if u.RawQuery != "" {
		u.RawQuery = "redacted"
	}
	segments := strings.Split(u.Path, "/")
	for i, seg := range segments {
		if seg != "" && !isVersionSegment(seg) {
			segments[i] = "REDACTED"
		}
	}
	u.Path = strings.Join(segments, "/")
	u.RawPath = ""
	return u.String()
}

// RedactSecrets rewrites text so that no credential from the RPC URL survives.
func (c Config) RedactSecrets(text string) string {
	if c.RPCURL == "" || text == "" {
		return text
	}
	redacted := c.RedactedRPCURL()
	text = strings.ReplaceAll(text, c.RPCURL, redacted)

	u, err := url.Parse(c.RPCURL)
	if err != nil {
		return text
	}
	text = strings.ReplaceAll(text, u.Redacted(), redacted)

	var secrets []string
	if u.User != nil {
		secrets = append(secrets, u.User.String())
	}
	if u.RawQuery != "" {
		secrets = append(secrets, u.RawQuery)
	}
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" && !isVersionSegment(seg) {
			secrets = append(secrets, seg)
		}
	}
	for _, secret := range secrets {
		// short segments such as "rpc" also occur in ordinary error text
		if len(secret) >= 8 {
			text = strings.ReplaceAll(text, secret, "REDACTED")
		}
	}
	return text
}

func isVersionSegment(seg string) bool {
	if len(seg) < 2 || seg[0] != 'v' {
		return false
	}
	for _, r := range seg[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Ref selects a chain for a single call.
type Ref struct {
	Chain   string `json:"chain"`
	Testnet bool   `json:"testnet"`
}

func (r Ref) String() string {
	if r.Testnet {
		return r.Chain + "(testnet)"
	}
	return r.Chain
}

// HealthReport is the outcome of a connectivity probe.
type HealthReport struct {
	Chain       string `json:"chain"`
	Testnet     bool   `json:"testnet"`
	ChainID     uint64 `json:"chain_id,omitempty"`
	Connected   bool   `json:"connected"`
	BlockNumber uint64 `json:"block_number,omitempty"`
	LatencyMS   int64  `json:"latency_ms"`
	Error       string `json:"error,omitempty"`
}

func (h HealthReport) String() string {
	if h.Connected {
		return fmt.Sprintf("%s: connected (block %d, %dms)", Ref{h.Chain, h.Testnet}, h.BlockNumber, h.LatencyMS)
	}
	return fmt.Sprintf("%s: unreachable (%s)", Ref{h.Chain, h.Testnet}, h.Error)
}
