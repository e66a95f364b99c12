package model

import "phygital/internal/phygital/chain"

// ChainView is the public form of chain.Config. RPC credentials never leave the server.
type ChainView struct {
	Key             string         `json:"key"`
	Name            string         `json:"name"`
	Family          string         `json:"family"`
	ChainID         uint64         `json:"chain_id"`
	RPCURL          string         `json:"rpc_url"`
	Currency        chain.Currency `json:"native_currency"`
	ContractAddress string         `json:"contract_address,omitempty"`
	Deployed        bool           `json:"deployed"`
	ExplorerURL     string         `json:"explorer_url"`
	IsTestnet       bool           `json:"is_testnet"`
	Testnet         *ChainView     `json:"testnet,omitempty"`
}

func NewChainView(cfg chain.Config) ChainView {
	v := ChainView{
		Key:             cfg.Key,
		Name:            cfg.Name,
		Family:          string(cfg.Family),
		ChainID:         cfg.ChainID,
		RPCURL:          cfg.RedactedRPCURL(),
		Currency:        cfg.Currency,
		ContractAddress: cfg.ContractAddress,
		Deployed:        cfg.Deployed(),
		ExplorerURL:     cfg.ExplorerURL,
		IsTestnet:       cfg.IsTestnet,
	}
	if cfg.Testnet != nil {
		tv := NewChainView(*cfg.Testnet)
		v.Testnet = &tv
	}
	return v
}
