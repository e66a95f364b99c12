package model

import "time"

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Code + ": " + e.Message
}

// User is the subset of the auth-owned users document read here.
type User struct {
	ID   string `bson:"_id" json:"id"`
	Role string `bson:"role" json:"role"`
}

type RoleView struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type PermissionView struct {
	Permission  string `json:"permission"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Roles that hold the permission, admin included.
	Roles []string `json:"roles"`
}

type MyPermissionsResponse struct {
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type CheckPermissionResponse struct {
	Allowed bool `json:"allowed"`
}

type BlockNumberResponse struct {
	Chain       string `json:"chain"`
	Testnet     bool   `json:"testnet"`
	BlockNumber uint64 `json:"block_number"`
}

type BalanceResponse struct {
	Chain   string `json:"chain"`
	Testnet bool   `json:"testnet"`
	Address string `json:"address"`
	// Balance is in whole native units, e.g. "1.5" ETH.
	Balance string `json:"balance"`
	Symbol  string `json:"symbol"`
}

type SendTransactionResponse struct {
	Chain   string `json:"chain"`
	Testnet bool   `json:"testnet"`
	TxHash  string `json:"tx_hash"`
}

// ChainHealthCheck is one persisted status probe (append-only).
type ChainHealthCheck struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Chain       string    `bson:"chain" json:"chain"`
	Testnet     bool      `bson:"testnet" json:"testnet"`
	ChainID     uint64    `bson:"chain_id" json:"chain_id"`
	Connected   bool      `bson:"connected" json:"connected"`
	BlockNumber uint64    `bson:"block_number,omitempty" json:"block_number,omitempty"`
	LatencyMS   int64     `bson:"latency_ms" json:"latency_ms"`
	Error       string    `bson:"error,omitempty" json:"error,omitempty"`
	CheckedBy   string    `bson:"checked_by,omitempty" json:"checked_by,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type ChainHealthHistoryResp struct {
	Data  []*ChainHealthCheck `json:"data"`
	Limit int                 `json:"limit"`
}
