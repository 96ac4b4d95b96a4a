package middleware

import (
	"polaris-api/pkg/log"
	"polaris-api/pkg/metrics"
	"polaris-api/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	metrics    *metrics.Metrics
}

// New returns the middleware set. A nil jwtManager turns Auth into a
// pass-through that attaches an anonymous scope.
func New(l log.Logger, jwtManager scope.Manager, m *metrics.Metrics) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		metrics:    m,
	}
}
