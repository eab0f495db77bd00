package resilience

import "time"

// CircuitBreakerConfig tunes how a breaker trips and recovers.
// FailureThreshold consecutive failures open the circuit; after
// OpenTimeout it admits up to HalfOpenMaxReq trial requests before
// deciding to close again or re-open.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 15 * time.Second
	defaultHalfOpenMaxReq   = 2
)

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
}

// NormalizeCircuitBreakerConfig replaces non-positive tunables with the
// defaults, so a zero-valued config is safe to hand to a breaker.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaultFailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaultOpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaultHalfOpenMaxReq
	}

	return cfg
}
