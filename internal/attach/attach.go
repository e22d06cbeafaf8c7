package attach

import (
	"go.uber.org/zap"

	"github.com/woxQAQ/copilot-bridge/internal/editor"
)

// DisabledReason is reported when the inclusion policy rejects a
// buffer. The wording is part of the user-facing contract.
const DisabledReason = "copilot is disabled"

// Decision is the outcome of evaluating a buffer for attachment.
type Decision struct {
	Attach bool
	Reason string
}

// FiletypePolicy decides whether a filetype may attach. Policies are
// total: they always produce an answer, never an error.
type FiletypePolicy interface {
	Check(filetype string) (ok bool, reason string)
}

// InclusionPolicy decides whether a specific buffer may attach, given
// its id and name.
type InclusionPolicy interface {
	Include(id int, name string) bool
}

// IncludeFunc adapts a closure to an InclusionPolicy.
type IncludeFunc func(id int, name string) bool

func (f IncludeFunc) Include(id int, name string) bool { return f(id, name) }

// Evaluator combines the two policy collaborators.
type Evaluator struct {
	filetypes FiletypePolicy
	inclusion InclusionPolicy
	logger    *zap.Logger
}

// NewEvaluator creates an attach evaluator.
func NewEvaluator(filetypes FiletypePolicy, inclusion InclusionPolicy, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		filetypes: filetypes,
		inclusion: inclusion,
		logger:    logger.With(zap.String("component", "attach")),
	}
}

// Decide evaluates whether the client should attach to the buffer.
// The filetype policy is consulted first and its reason wins; the
// inclusion policy is only asked once the filetype passes.
func (e *Evaluator) Decide(b editor.Buffer) Decision {
	if ok, reason := e.filetypes.Check(b.Filetype()); !ok {
		e.logger.Debug("Attach rejected by filetype policy",
			zap.Int("buffer", b.ID()),
			zap.String("filetype", b.Filetype()),
			zap.String("reason", reason),
		)
		return Decision{Attach: false, Reason: reason}
	}

	if !e.inclusion.Include(b.ID(), b.Path()) {
		e.logger.Debug("Attach rejected by inclusion policy",
			zap.Int("buffer", b.ID()),
			zap.String("name", b.Path()),
		)
		return Decision{Attach: false, Reason: DisabledReason}
	}

	return Decision{Attach: true}
}
