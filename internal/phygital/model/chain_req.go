package model

import (
	"strings"

	"phygital/internal/phygital/chain"
)

// ChainReq addresses one network of one chain.
type ChainReq struct {
	Chain   string `param:"chain" json:"-" validate:"required,max=32"`
	Testnet bool   `query:"testnet" json:"testnet"`
}

func (r *ChainReq) Validate() error {
	r.Chain = strings.ToLower(strings.TrimSpace(r.Chain))
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

func (r *ChainReq) Ref() chain.Ref {
	return chain.Ref{Chain: r.Chain, Testnet: r.Testnet}
}

type GetBalanceReq struct {
	ChainReq
	Address string `param:"address" json:"-" validate:"required,max=128"`
}

func (r *GetBalanceReq) Validate() error {
	r.Address = strings.TrimSpace(r.Address)
	if err := r.ChainReq.Validate(); err != nil {
		return err
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type SendTransactionReq struct {
	ChainReq
	// SignedTx is 0x-prefixed hex for EVM chains and base64 for Solana.
	SignedTx string `json:"signed_tx" validate:"required"`
}

func (r *SendTransactionReq) Validate() error {
	r.SignedTx = strings.TrimSpace(r.SignedTx)
	if err := r.ChainReq.Validate(); err != nil {
		return err
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type GetChainHealthHistoryReq struct {
	ChainReq
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}

func (r *GetChainHealthHistoryReq) Validate() error {
	if r.Limit <= 0 {
		r.Limit = 50
	}
	if r.Limit > 500 {
		r.Limit = 500
	}
	if err := r.ChainReq.Validate(); err != nil {
		return err
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
