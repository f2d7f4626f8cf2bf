// Package diagnostics adapts a host application's zap logger into the
// Logger interface the traversal package accepts (via NewLoggingVisitor)
// for visitor-driven tracing, so observing a traversal never requires this
// module to import zap outside this one narrow adapter.
//
// Grounded on the zap usage pattern in the retrieval pack's 2lar-b2
// backend (structured *zap.Logger passed through application layers and
// invoked at named call sites), adapted here to satisfy the single-method
// Debugf capability traversal.Logger declares.
package diagnostics

import "go.uber.org/zap"

// ZapVisitorLogger adapts a *zap.Logger to traversal.Logger (and to any
// other package-local Logger interface with the same Debugf method set,
// since Go interface satisfaction is structural).
type ZapVisitorLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapVisitorLogger wraps log for use as a traversal.Logger.
func NewZapVisitorLogger(log *zap.Logger) *ZapVisitorLogger {
	return &ZapVisitorLogger{sugar: log.Sugar()}
}

// Debugf logs at debug level, matching zap's Sugar().Debugf semantics.
func (z *ZapVisitorLogger) Debugf(format string, args ...any) {
	z.sugar.Debugf(format, args...)
}
