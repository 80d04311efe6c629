package handlers

import (
	"crmkit/internal/state"
	"crmkit/pkg/logger"
	"crmkit/pkg/metrics"

	"go.uber.org/zap"
)

// Service identity reported by the status endpoints
const (
	ServiceName = "crmkit"
	Version     = "1.0.0"
)

// HandlerService provides HTTP handlers for the API
type HandlerService struct {
	state   *state.State
	metrics *metrics.Metrics
}

// NewHandlerService creates a new handler service. m may be nil.
func NewHandlerService(st *state.State, m *metrics.Metrics) *HandlerService {
	logger.Info("Initializing handler service",
		zap.Int("countries", st.Countries.Len()),
		zap.String("currency_symbol", st.CurrencySymbol))

	if m != nil {
		m.SetCountriesLoaded(st.Countries.Len())
	}

	return &HandlerService{
		state:   st,
		metrics: m,
	}
}
