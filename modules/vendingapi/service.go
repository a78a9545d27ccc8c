package vendingapi

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/vendkit/pkg/vending"
)

// Service exposes one vending machine over HTTP. It owns no state of its
// own: every request is delegated to the machine's workflows, which enforce
// the transition rules and atomicity.
type Service struct {
	machine *vending.Machine
	log     *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the request logger. Logging is discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates an HTTP service for the given machine.
func New(machine *vending.Machine, opts ...Option) *Service {
	s := &Service{
		machine: machine,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
