// Package wizard drives a document-generation session through its stages:
// type selection, four field steps, review, generation, done. Forward
// navigation between field steps is deliberately ungated; the full
// validation pass runs only at the boundary between the last field step and
// review, trading earlier feedback for fewer interruptions. Backward
// navigation is always free and never re-validates.
package wizard

import (
	"errors"
	"fmt"

	"github.com/qanoonsoft/docwizard/pkg/formstate"
	"github.com/qanoonsoft/docwizard/pkg/schema"
	"github.com/qanoonsoft/docwizard/pkg/validate"
)

// StepCount is the fixed number of field steps every document type uses.
// Fields are partitioned evenly across the steps in registry order.
const StepCount = 4

// Stage names a wizard position.
type Stage string

const (
	StageTypeSelection Stage = "type-selection"
	StageFieldStep     Stage = "field-step"
	StageReview        Stage = "review"
	StageGenerating    Stage = "generating"
	StageDone          Stage = "done"
)

var (
	// ErrNoType is returned when navigation is attempted before a document
	// type has been chosen.
	ErrNoType = errors.New("wizard: choose a document type first")
	// ErrBlocked is returned when blocking validation errors prevent the
	// requested transition. The session's Result carries the details.
	ErrBlocked = errors.New("wizard: blocking validation errors")
	// ErrBusy is returned when a generation attempt is already in flight.
	ErrBusy = errors.New("wizard: generation already in progress")
)

// Session is one user's walk through the wizard. It owns its form state
// exclusively; there is no cross-session sharing.
type Session struct {
	registry *schema.Registry
	engine   *validate.Engine

	docType schema.DocumentType
	stage   Stage
	step    int
	state   *formstate.State
	result  validate.Result

	// payload is the snapshot frozen by the validation pass that admitted
	// review. Generation consumes this, never the live state, so edits
	// cannot desynchronise the persisted artifact from what was validated.
	payload map[string]string

	// epoch invalidates in-flight generation attempts across resets. A
	// result delivered with a stale epoch is dropped instead of being
	// applied to a session that no longer exists.
	epoch int
}

// NewSession constructs a session at the type-selection stage.
func NewSession(registry *schema.Registry, engine *validate.Engine) *Session {
	return &Session{
		registry: registry,
		engine:   engine,
		stage:    StageTypeSelection,
		state:    formstate.New(),
	}
}

// Stage returns the current stage.
func (s *Session) Stage() Stage { return s.stage }

// Step returns the current field step (1-based) while at StageFieldStep,
// otherwise 0.
func (s *Session) Step() int {
	if s.stage != StageFieldStep {
		return 0
	}
	return s.step
}

// Type returns the chosen document type.
func (s *Session) Type() schema.DocumentType { return s.docType }

// State exposes the session's form state for field updates.
func (s *Session) State() *formstate.State { return s.state }

// Result returns the outcome of the most recent validation pass.
func (s *Session) Result() validate.Result { return s.result }

// SelectType fixes the document type and moves to the first field step. The
// type is immutable for the life of the session; a session that wants a
// different type resets first.
func (s *Session) SelectType(docType schema.DocumentType) error {
	if s.stage != StageTypeSelection {
		return fmt.Errorf("wizard: cannot select a type at stage %q", s.stage)
	}
	if s.registry.FieldCount(docType) == 0 {
		return fmt.Errorf("wizard: unknown document type %q", docType)
	}
	s.docType = docType
	s.stage = StageFieldStep
	s.step = 1
	return nil
}

// Set records a field value on the live form state.
func (s *Session) Set(field, value string) {
	s.state.Set(field, value)
}

// StepFields returns the schema fields shown on the given step (1-based).
// Fields are partitioned in registry order, ceil(n/StepCount) per step; the
// last step may run short.
func (s *Session) StepFields(step int) []schema.FieldDefinition {
	fields := s.registry.Fields(s.docType)
	if len(fields) == 0 || step < 1 || step > StepCount {
		return nil
	}
	per := (len(fields) + StepCount - 1) / StepCount
	start := (step - 1) * per
	if start >= len(fields) {
		return nil
	}
	end := start + per
	if end > len(fields) {
		end = len(fields)
	}
	return fields[start:end]
}

// Next advances one step forward. Intermediate field steps advance
// unconditionally; leaving the final field step runs the full validation
// pass and refuses with ErrBlocked while any blocking error remains. The
// pass that admits review also freezes the generation payload.
func (s *Session) Next() error {
	switch s.stage {
	case StageTypeSelection:
		return ErrNoType
	case StageFieldStep:
		if s.step < StepCount {
			s.step++
			return nil
		}
		s.result = s.engine.Validate(s.docType, s.state)
		if !s.result.Valid() {
			return ErrBlocked
		}
		s.payload = s.state.Snapshot()
		s.stage = StageReview
		return nil
	default:
		return fmt.Errorf("wizard: cannot advance from stage %q", s.stage)
	}
}

// Back navigates one step backward. Backward moves are unconditional and
// never re-validate.
func (s *Session) Back() {
	switch s.stage {
	case StageFieldStep:
		if s.step > 1 {
			s.step--
		}
	case StageReview:
		s.stage = StageFieldStep
		s.step = StepCount
	}
}

// Payload returns the frozen snapshot generation will consume. Nil until a
// validation pass has admitted review.
func (s *Session) Payload() map[string]string {
	return s.payload
}

// BeginGeneration re-runs validation as a final guard and moves to the
// generating stage. It returns the frozen payload and an epoch token; the
// caller hands both back to FinishGeneration. ErrBusy is returned while a
// generation attempt is already in flight.
func (s *Session) BeginGeneration() (map[string]string, int, error) {
	if s.stage == StageGenerating {
		return nil, 0, ErrBusy
	}
	if s.stage != StageReview {
		return nil, 0, fmt.Errorf("wizard: cannot generate at stage %q", s.stage)
	}

	s.result = s.engine.Validate(s.docType, s.state)
	if !s.result.Valid() {
		return nil, 0, ErrBlocked
	}
	s.payload = s.state.Snapshot()
	s.stage = StageGenerating
	return s.payload, s.epoch, nil
}

// FinishGeneration applies the outcome of a generation attempt. A stale
// epoch (the session was reset while the call was in flight) is dropped
// silently: the request was allowed to complete, but its result has no
// session to land in. Success ends the session at StageDone; failure
// returns to review so the user can retry by re-invoking.
func (s *Session) FinishGeneration(epoch int, genErr error) {
	if epoch != s.epoch || s.stage != StageGenerating {
		return
	}
	if genErr != nil {
		s.stage = StageReview
		return
	}
	s.stage = StageDone
}

// Reset tears the session down to type selection, replacing the form state
// wholesale and invalidating any in-flight generation attempt.
func (s *Session) Reset() {
	s.docType = ""
	s.stage = StageTypeSelection
	s.step = 0
	s.state = formstate.New()
	s.result = validate.Result{}
	s.payload = nil
	s.epoch++
}
