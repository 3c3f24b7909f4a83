// Package diag is the diagnostic stream the llrb engine reports rotation
// misuse and allocation-failure conditions to. Neither condition stops
// the caller: the engine logs and continues per the error-handling design.
package diag

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	rotateLeftMisuseMsg  = " ** RotateLeft called with black right child"
	rotateRightMisuseMsg = " ** RotateRight called with black left child"
	allocationFailureFmt = "** %s memory allocation failure"
)

// Sink is the diagnostic output contract. Implementations must not panic
// and must not block the caller for long: both call sites are on the
// engine's mutating hot path.
type Sink interface {
	RotateLeftMisuse()
	RotateRightMisuse()
	AllocationFailure(name string)
}

type zapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps a *zap.Logger as a Sink. A nil logger falls back to
// zap.NewNop(), matching the teacher's habit of never letting a missing
// logger crash the caller.
func NewZapSink(logger *zap.Logger) Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapSink{logger: logger}
}

func (s *zapSink) RotateLeftMisuse() {
	s.logger.Warn(rotateLeftMisuseMsg)
}

func (s *zapSink) RotateRightMisuse() {
	s.logger.Warn(rotateRightMisuseMsg)
}

func (s *zapSink) AllocationFailure(name string) {
	s.logger.Error(fmt.Sprintf(allocationFailureFmt, name))
}

type nopSink struct{}

// NewNopSink returns a Sink that discards everything, for tests and
// callers that don't want the default production logger.
func NewNopSink() Sink { return nopSink{} }

func (nopSink) RotateLeftMisuse()          {}
func (nopSink) RotateRightMisuse()         {}
func (nopSink) AllocationFailure(_ string) {}

// Default is the package-level fallback Sink used when a Tree is built
// without an explicit WithSink option. It writes to a production zap
// logger so rotation misuse and allocation failures are never silent by
// default outside of tests.
var Default = newDefaultSink()

func newDefaultSink() Sink {
	logger, err := zap.NewProduction()
	if err != nil {
		return NewNopSink()
	}
	return NewZapSink(logger)
}
