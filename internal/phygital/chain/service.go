package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultTimeout bounds every outbound RPC call.
const DefaultTimeout = 10 * time.Second

// Service answers chain questions for an explicitly selected network.
// It holds no selection state; every call names its chain through a Ref.
type Service struct {
	Registry *Registry
	Dialer   Dialer
	Timeout  time.Duration
	Logger   *slog.Logger
}

func NewService(registry *Registry, dialer Dialer, timeout time.Duration) *Service {
	if dialer == nil {
		dialer = FamilyDialer{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		Registry: registry,
		Dialer:   dialer,
		Timeout:  timeout,
		Logger:   slog.Default(),
	}
}

// Config returns the network config selected by ref.
func (s *Service) Config(ref Ref) (Config, error) {
	return s.Registry.Resolve(ref)
}

// Chains lists every configured chain in catalog order.
func (s *Service) Chains() []Config {
	return s.Registry.All()
}

// BlockNumber fetches the current block height of the selected network.
func (s *Service) BlockNumber(ctx context.Context, ref Ref) (uint64, error) {
	var height uint64
	err := s.withClient(ctx, ref, "block_number", func(callCtx context.Context, c Client, _ Config) error {
		var err error
		height, err = c.BlockNumber(callCtx)
		return err
	})
	return height, err
}

// Balance returns the native balance of address as a decimal string.
func (s *Service) Balance(ctx context.Context, ref Ref, address string) (string, error) {
	cfg, err := s.Registry.Resolve(ref)
	if err != nil {
		return "", err
	}
	if err := ValidateAddress(cfg.Family, address); err != nil {
		return "", err
	}

	var formatted string
	err = s.withClient(ctx, ref, "balance", func(callCtx context.Context, c Client, cfg Config) error {
		amount, err := c.Balance(callCtx, address)
		if err != nil {
			return err
		}
		if amount == nil {
			return fmt.Errorf("%w: empty balance response", ErrConnectivity)
		}
		formatted = FormatUnits(amount, cfg.Currency.Decimals)
		return nil
	})
	return formatted, err
}

// TestConnection reports whether the selected network answers a block number request.
func (s *Service) TestConnection(ctx context.Context, ref Ref) bool {
	_, err := s.BlockNumber(ctx, ref)
	return err == nil
}

// SendTransaction broadcasts a pre-signed transaction. Nonce, gas and retries
// belong to the signer.
func (s *Service) SendTransaction(ctx context.Context, ref Ref, signedTx []byte) (string, error) {
	if len(signedTx) == 0 {
		return "", fmt.Errorf("%w: empty payload", ErrInvalidTransaction)
	}
	var hash string
	err := s.withClient(ctx, ref, "send_transaction", func(callCtx context.Context, c Client, _ Config) error {
		var err error
		hash, err = c.SendRawTransaction(callCtx, signedTx)
		return err
	})
	return hash, err
}

// CheckHealth probes the selected network and reports latency and height.
func (s *Service) CheckHealth(ctx context.Context, ref Ref) HealthReport {
	report := HealthReport{Chain: ref.Chain, Testnet: ref.Testnet}
	if cfg, err := s.Registry.Resolve(ref); err == nil {
		report.Chain = cfg.Key
		report.ChainID = cfg.ChainID
	}

	start := time.Now()
	height, err := s.BlockNumber(ctx, ref)
	report.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Connected = true
	report.BlockNumber = height
	return report
}

// withClient resolves ref, dials a fresh client under the call deadline and runs fn.
// Errors come back classified as configuration, connectivity, timeout or cancellation.
func (s *Service) withClient(ctx context.Context, ref Ref, op string, fn func(context.Context, Client, Config) error) error {
	cfg, err := s.Registry.Resolve(ref)
	if err != nil {
		return err
	}
	if cfg.RPCURL == "" {
		return fmt.Errorf("%w: no rpc url configured for %s", ErrConnectivity, ref)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	c, err := s.Dialer.Dial(callCtx, cfg)
	if err == nil {
		defer c.Close()
		err = fn(callCtx, c, cfg)
	}
	if err == nil {
		return nil
	}

	err = redactError(cfg, s.classify(callCtx, ref, op, err))
	s.Logger.Warn("chain rpc call failed",
		"chain", cfg.Key,
		"testnet", cfg.IsTestnet,
		"op", op,
		"error", err,
	)
	return err
}

func (s *Service) classify(callCtx context.Context, ref Ref, op string, err error) error {
	switch {
	case errors.Is(callCtx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %s %s exceeded %s", ErrTimeout, op, ref, s.Timeout)
	case errors.Is(callCtx.Err(), context.Canceled):
		return fmt.Errorf("%s %s: %w", op, ref, context.Canceled)
	case errors.Is(err, ErrInvalidTransaction),
		errors.Is(err, ErrConnectivity),
		errors.Is(err, ErrConfiguration):
		return err
	default:
		return fmt.Errorf("%w: %s %s: %v", ErrConnectivity, op, ref, err)
	}
}

// redactedError keeps the wrapped chain for errors.Is while its message has
// RPC credentials removed.
type redactedError struct {
	err error
	msg string
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }

func redactError(cfg Config, err error) error {
	if err == nil {
		return nil
	}
	msg := cfg.RedactSecrets(err.Error())
	if msg == err.Error() {
		return err
	}
	return &redactedError{err: err, msg: msg}
}
