package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/qanoonsoft/docwizard/pkg/schema"
)

// ErrNotAuthenticated is returned when no authenticated user is present.
// Callers redirect to login rather than surfacing this as a generation
// failure.
var ErrNotAuthenticated = errors.New("generate: not authenticated")

// GenerateError reports a failure of the external generation collaborator.
// The attempt is retryable by the user re-invoking; nothing was persisted.
type GenerateError struct {
	Err error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("generate: generation failed: %v", e.Err)
}

func (e *GenerateError) Unwrap() error { return e.Err }

// SaveError reports the "generated but not saved" condition: the
// collaborator produced content, but persisting it failed. The generated
// content is carried in the error so it is never silently lost.
type SaveError struct {
	Result Result
	Err    error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("generate: document generated but not saved: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Result is a successful generation outcome.
type Result struct {
	Content     string
	CreditsUsed int
	Title       string
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithGenerator injects the generation collaborator.
func WithGenerator(g Generator) Option {
	return func(o *Orchestrator) { o.generator = g }
}

// WithStore injects the artifact store.
func WithStore(store ArtifactStore) Option {
	return func(o *Orchestrator) { o.store = store }
}

// WithAuth injects the authentication context.
func WithAuth(auth AuthContext) Option {
	return func(o *Orchestrator) { o.auth = auth }
}

// WithLedger injects the credit ledger consumption is reported to.
func WithLedger(ledger CreditLedger) Option {
	return func(o *Orchestrator) { o.ledger = ledger }
}

// WithClock overrides the time source used for artifact titles.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// Orchestrator coordinates one generation call: auth check, collaborator
// invocation, content sanitisation, artifact persistence, credit report.
type Orchestrator struct {
	registry  *schema.Registry
	generator Generator
	store     ArtifactStore
	auth      AuthContext
	ledger    CreditLedger
	sanitize  *bluemonday.Policy
	now       func() time.Time
}

// New constructs an orchestrator. Generator, store, and auth are required
// for Generate to succeed; the ledger is optional.
func New(registry *schema.Registry, options ...Option) *Orchestrator {
	o := &Orchestrator{
		registry: registry,
		sanitize: bluemonday.UGCPolicy(),
		now:      time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Generate runs the full handoff for an already-validated payload. The
// payload must be the snapshot frozen by the validation pass that admitted
// review; the orchestrator never reads live wizard state. Exactly one
// persistence call is made per successful generation, with the payload
// retained verbatim as artifact metadata.
func (o *Orchestrator) Generate(ctx context.Context, docType schema.DocumentType, payload map[string]string) (Result, error) {
	if o.generator == nil || o.store == nil {
		return Result{}, errors.New("generate: orchestrator is missing collaborators")
	}
	userID, ok := o.authenticated()
	if !ok {
		return Result{}, ErrNotAuthenticated
	}

	resp, err := o.generator.Generate(ctx, Request{
		DocumentType: docType,
		Details:      payload,
	})
	if err != nil {
		return Result{}, &GenerateError{Err: err}
	}

	result := Result{
		Content:     o.sanitize.Sanitize(resp.Content),
		CreditsUsed: resp.CreditsUsed,
		Title:       o.title(docType),
	}

	artifact := Artifact{
		OwnerID:      userID,
		DocumentType: docType,
		Title:        result.Title,
		Content:      result.Content,
		Status:       "generated",
		CreditsUsed:  result.CreditsUsed,
		Metadata:     payload,
	}
	if err := o.store.Save(ctx, artifact); err != nil {
		return Result{}, &SaveError{Result: result, Err: err}
	}

	if o.ledger != nil && result.CreditsUsed > 0 {
		o.ledger.Record(ctx, userID, result.CreditsUsed)
	}

	return result, nil
}

func (o *Orchestrator) authenticated() (string, bool) {
	if o.auth == nil {
		return "", false
	}
	return o.auth.UserID()
}

// title builds the artifact title: "<type label> - <creation date>".
func (o *Orchestrator) title(docType schema.DocumentType) string {
	return fmt.Sprintf("%s - %s", o.registry.Label(docType), o.now().Format("2006-01-02"))
}
