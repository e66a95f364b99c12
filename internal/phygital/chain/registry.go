package chain

import (
	"fmt"
	"os"
	"strings"
)

const providerURLTemplate = "https://%s.g.alchemy.com/v2/%s"

// ProviderKeyEnv names the environment variable holding the RPC provider key.
const ProviderKeyEnv = "ALCHEMY_API_KEY"

// Env looks up an environment variable; os.Getenv satisfies it.
type Env func(key string) string

// Registry is the ordered set of configured chains. It is read-only after
// NewRegistry and safe for concurrent use.
type Registry struct {
	keys    []string
	configs map[string]Config
}

// NewRegistryFromEnv builds the registry from the embedded catalog and the process environment.
func NewRegistryFromEnv() (*Registry, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return NewRegistry(catalog, os.Getenv)
}

// NewRegistry resolves every catalog entry against env. RPC URL precedence:
// <CHAIN>_RPC_URL, NEXT_PUBLIC_<CHAIN>_RPC_URL, provider template, empty.
func NewRegistry(catalog *Catalog, env Env) (*Registry, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrConfiguration)
	}
	if env == nil {
		env = func(string) string { return "" }
	}
	providerKey := strings.TrimSpace(env(ProviderKeyEnv))

	r := &Registry{configs: make(map[string]Config, len(catalog.Chains))}
	chainIDs := make(map[uint64]string)

	claim := func(id uint64, owner string) error {
		if id == 0 {
			return fmt.Errorf("%w: %s has no chain id", ErrConfiguration, owner)
		}
		if prev, ok := chainIDs[id]; ok {
			return fmt.Errorf("%w: chain id %d used by both %s and %s", ErrConfiguration, id, prev, owner)
		}
		chainIDs[id] = owner
		return nil
	}

	for _, entry := range catalog.Chains {
		key := strings.ToLower(strings.TrimSpace(entry.Key))
		if key == "" {
			return nil, fmt.Errorf("%w: catalog entry without key", ErrConfiguration)
		}
		if _, dup := r.configs[key]; dup {
			return nil, fmt.Errorf("%w: duplicate chain key %q", ErrConfiguration, key)
		}
		if !entry.Family.Valid() {
			return nil, fmt.Errorf("%w: chain %q has unknown family %q", ErrConfiguration, key, entry.Family)
		}
		if err := validateCurrency(key, entry.Currency); err != nil {
			return nil, err
		}

		prefix := envPrefix(key)
		cfg := Config{
			Key:             key,
			Name:            entry.Name,
			Family:          entry.Family,
			ChainID:         entry.Mainnet.ChainID,
			RPCURL:          resolveRPCURL(env, prefix, entry.Mainnet.Slug, providerKey),
			Currency:        entry.Currency,
			ContractAddress: lookupEnv(env, prefix+"_CONTRACT_ADDRESS"),
			ExplorerURL:     entry.Mainnet.ExplorerURL,
		}
		if err := claim(cfg.ChainID, key); err != nil {
			return nil, err
		}

		if tn := entry.Testnet; tn != nil {
			testnet := Config{
				Key:             key,
				Name:            tn.Name,
				Family:          entry.Family,
				ChainID:         tn.ChainID,
				RPCURL:          resolveRPCURL(env, prefix+"_TESTNET", tn.Slug, providerKey),
				Currency:        entry.Currency,
				ContractAddress: lookupEnv(env, prefix+"_TESTNET_CONTRACT_ADDRESS"),
				ExplorerURL:     tn.ExplorerURL,
				IsTestnet:       true,
			}
			if testnet.Name == "" {
				testnet.Name = entry.Name + " Testnet"
			}
			if tn.Currency != nil {
				if err := validateCurrency(key+" testnet", *tn.Currency); err != nil {
					return nil, err
				}
				testnet.Currency = *tn.Currency
			}
			if err := claim(testnet.ChainID, key+" testnet"); err != nil {
				return nil, err
			}
			cfg.Testnet = &testnet
		}

		r.keys = append(r.keys, key)
		r.configs[key] = cfg
	}

	return r, nil
}

func validateCurrency(owner string, c Currency) error {
	if c.Symbol == "" {
		return fmt.Errorf("%w: %s has no currency symbol", ErrConfiguration, owner)
	}
	if c.Decimals < 0 || c.Decimals > 36 {
		return fmt.Errorf("%w: %s currency decimals %d out of range", ErrConfiguration, owner, c.Decimals)
	}
	return nil
}

func envPrefix(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// lookupEnv reads NAME, falling back to NEXT_PUBLIC_NAME.
func lookupEnv(env Env, name string) string {
	if v := strings.TrimSpace(env(name)); v != "" {
		return v
	}
	return strings.TrimSpace(env("NEXT_PUBLIC_" + name))
}

func resolveRPCURL(env Env, prefix, slug, providerKey string) string {
	if v := lookupEnv(env, prefix+"_RPC_URL"); v != "" {
		return v
	}
	if slug != "" && providerKey != "" {
		return fmt.Sprintf(providerURLTemplate, slug, providerKey)
	}
	return ""
}

// Keys returns chain keys in catalog order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Get returns the mainnet config for key. Unknown keys are an error; there is no default chain.
func (r *Registry) Get(key string) (Config, error) {
	cfg, ok := r.configs[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown chain %q", ErrConfiguration, key)
	}
	if cfg.Testnet != nil {
		tn := *cfg.Testnet
		cfg.Testnet = &tn
	}
	return cfg, nil
}

// Resolve returns the mainnet or testnet config selected by ref.
func (r *Registry) Resolve(ref Ref) (Config, error) {
	cfg, err := r.Get(ref.Chain)
	if err != nil {
		return Config{}, err
	}
	if !ref.Testnet {
		return cfg, nil
	}
	if cfg.Testnet == nil {
		return Config{}, fmt.Errorf("%w: chain %q has no testnet", ErrConfiguration, cfg.Key)
	}
	return *cfg.Testnet, nil
}

// All returns the mainnet configs in catalog order.
func (r *Registry) All() []Config {
	out := make([]Config, 0, len(r.keys))
	for _, k := range r.keys {
		cfg, _ := r.Get(k)
		out = append(out, cfg)
	}
	return out
}
