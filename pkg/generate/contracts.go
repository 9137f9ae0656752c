// Package generate hands a validated form payload to the external
// generation collaborator and persists the resulting artifact. The
// collaborators themselves (generation service, artifact store,
// authentication, credit ledger) live outside this module; only their
// contracts are defined here.
package generate

import (
	"context"

	"github.com/qanoonsoft/docwizard/pkg/schema"
)

// Request is the payload handed to the generation service: the chosen
// document type and the validated field values.
type Request struct {
	DocumentType schema.DocumentType `json:"documentType"`
	Details      map[string]string   `json:"details"`
}

// Response is what the generation service returns. CreditsUsed is whatever
// the collaborator reports; the orchestrator accounts for it but never
// computes it.
type Response struct {
	Content     string `json:"content"`
	CreditsUsed int    `json:"creditsUsed"`
}

// Generator is the external generation collaborator. Implementations must
// be safe to retry manually; the orchestrator performs no automatic
// retries.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// GeneratorFunc adapts a function into a Generator.
type GeneratorFunc func(ctx context.Context, req Request) (Response, error)

// Generate delegates to the underlying function.
func (fn GeneratorFunc) Generate(ctx context.Context, req Request) (Response, error) {
	return fn(ctx, req)
}

// Artifact is the persisted record of a generated document. Metadata keeps
// the originating form values so the document can be edited later.
type Artifact struct {
	OwnerID      string              `json:"ownerId"`
	DocumentType schema.DocumentType `json:"documentType"`
	Title        string              `json:"title"`
	Content      string              `json:"content"`
	Status       string              `json:"status"`
	CreditsUsed  int                 `json:"creditsUsed"`
	Metadata     map[string]string   `json:"metadata"`
}

// ArtifactStore persists generated documents.
type ArtifactStore interface {
	Save(ctx context.Context, artifact Artifact) error
}

// AuthContext supplies a presence signal only; session management is not
// this module's concern.
type AuthContext interface {
	UserID() (string, bool)
}

// CreditLedger receives consumption reports. It is read-only from this
// module's perspective: consumption is reported, remaining-balance
// enforcement belongs to the generation service or a calling collaborator.
type CreditLedger interface {
	Record(ctx context.Context, userID string, credits int)
}
