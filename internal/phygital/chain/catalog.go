package chain

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// NetworkEntry is one network (mainnet or testnet) of a catalog chain.
type NetworkEntry struct {
	Name        string    `yaml:"name"`
	ChainID     uint64    `yaml:"chain_id"`
	Slug        string    `yaml:"slug"`
	ExplorerURL string    `yaml:"explorer_url"`
	Currency    *Currency `yaml:"currency"`
}

// CatalogEntry declares a chain and its provider slugs.
type CatalogEntry struct {
	Key      string        `yaml:"key"`
	Name     string        `yaml:"name"`
	Family   Family        `yaml:"family"`
	Currency Currency      `yaml:"currency"`
	Mainnet  NetworkEntry  `yaml:"mainnet"`
	Testnet  *NetworkEntry `yaml:"testnet"`
}

type Catalog struct {
	Chains []CatalogEntry `yaml:"chains"`
}

// LoadCatalog parses the embedded chain catalog.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: parse catalog: %v", ErrConfiguration, err)
	}
	if len(c.Chains) == 0 {
		return nil, fmt.Errorf("%w: catalog has no chains", ErrConfiguration)
	}
	return &c, nil
}
