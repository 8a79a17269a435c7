package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"subscription-tracker/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

type CircuitBreakerConfig struct {
	Name string
	// MaxFailures consecutive failures open the breaker
	MaxFailures  int
	ResetTimeout time.Duration
	// Probes is how many calls a half-open breaker lets through; that many
	// successes close it again
	Probes int
}

func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:         name,
		MaxFailures:  5,
		ResetTimeout: 30 * time.Second,
		Probes:       2,
	}
}

// CircuitBreaker sheds calls to an upstream that keeps failing. After
// ResetTimeout it admits a bounded number of probe calls and closes once
// they all succeed.
type CircuitBreaker struct {
	mu      sync.Mutex
	cfg     CircuitBreakerConfig
	metrics MetricsRecorderInterface
	now     func() time.Time

	state     models.CircuitBreakerState
	failures  int
	inFlight  int
	succeeded int
	openedAt  time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig, metrics MetricsRecorderInterface) CircuitBreakerInterface {
	if cfg.Probes <= 0 {
		cfg.Probes = 1
	}
	return &CircuitBreaker{cfg: cfg, metrics: metrics, now: time.Now}
}

// Allow reports whether a call may go ahead. Every nil return must be
// followed by exactly one Record.
func (cb *CircuitBreaker) Allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == models.CircuitOpen && cb.now().Sub(cb.openedAt) >= cb.cfg.ResetTimeout {
		cb.transition(models.CircuitHalfOpen)
	}

	switch cb.state {
	case models.CircuitOpen:
		return ErrCircuitBreakerOpen
	case models.CircuitHalfOpen:
		if cb.inFlight+cb.succeeded >= cb.cfg.Probes {
			return ErrCircuitBreakerOpen
		}
		cb.inFlight++
	}
	return nil
}

// Record reports the outcome of an allowed call. A call the caller gave up
// on counts neither way.
func (cb *CircuitBreaker) Record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == models.CircuitHalfOpen && cb.inFlight > 0 {
		cb.inFlight--
	}
	if errors.Is(err, context.Canceled) {
		return
	}

	if err == nil {
		cb.failures = 0
		if cb.state == models.CircuitHalfOpen {
			cb.succeeded++
			if cb.succeeded >= cb.cfg.Probes {
				cb.transition(models.CircuitClosed)
			}
		}
		return
	}

	cb.failures++
	if cb.state == models.CircuitHalfOpen || cb.failures >= cb.cfg.MaxFailures {
		cb.transition(models.CircuitOpen)
	}
}

func (cb *CircuitBreaker) State() models.CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// transition must be called with mu held.
func (cb *CircuitBreaker) transition(to models.CircuitBreakerState) {
	cb.state = to
	cb.inFlight = 0
	cb.succeeded = 0
	switch to {
	case models.CircuitOpen:
		cb.openedAt = cb.now()
	case models.CircuitClosed:
		cb.failures = 0
	}

	if cb.metrics != nil {
		cb.metrics.RecordGauge("circuit_breaker.state", float64(to), map[string]string{"service": cb.cfg.Name})
	}
}
