package chain

import "sync"

// Selection is per-session chain choice (dashboard chain switcher).
// Service never reads it; callers pass Current() into each call.
type Selection struct {
	mu       sync.RWMutex
	registry *Registry
	current  Ref
}

// NewSelection starts a selection on initial, which must be a registry key.
func NewSelection(registry *Registry, initial string) (*Selection, error) {
	cfg, err := registry.Get(initial)
	if err != nil {
		return nil, err
	}
	return &Selection{registry: registry, current: Ref{Chain: cfg.Key}}, nil
}

// SwitchChain selects key, keeping the testnet flag. Unknown keys leave the selection unchanged.
func (s *Selection) SwitchChain(key string) error {
	cfg, err := s.registry.Get(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current.Chain = cfg.Key
	s.mu.Unlock()
	return nil
}

// ToggleTestnet flips the testnet flag and returns the new value.
func (s *Selection) ToggleTestnet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Testnet = !s.current.Testnet
	return s.current.Testnet
}

func (s *Selection) Current() Ref {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Selection) CurrentConfig() (Config, error) {
	return s.registry.Resolve(s.Current())
}
