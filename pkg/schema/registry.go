package schema

import (
	"io/fs"
	"sort"
)

// Registry is the pure lookup for document schemas. It is built once and is
// safe for concurrent readers because it is never mutated after construction.
type Registry struct {
	schemas map[DocumentType]DocumentSchema
	types   []DocumentType
}

// NewRegistry loads every schema document from fsys. Pass EmbeddedFS() for
// the built-in document set.
func NewRegistry(fsys fs.FS) (*Registry, error) {
	schemas, err := LoadFS(fsys)
	if err != nil {
		return nil, err
	}

	types := make([]DocumentType, 0, len(schemas))
	for docType := range schemas {
		types = append(types, docType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return &Registry{schemas: schemas, types: types}, nil
}

// Default returns a registry over the embedded document set. Loading embedded
// schemas only fails when the bundled documents are malformed, which the
// schema tests guard against, so errors panic here.
func Default() *Registry {
	reg, err := NewRegistry(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	return reg
}

// Schema returns the full declarative schema for a document type.
func (r *Registry) Schema(docType DocumentType) (DocumentSchema, bool) {
	if r == nil {
		return DocumentSchema{}, false
	}
	doc, ok := r.schemas[docType]
	return doc, ok
}

// Fields returns the ordered field definitions for a document type. Unknown
// types yield an empty slice, not an error; callers guard against an
// unselected type themselves. The returned slice is a copy so callers cannot
// disturb registry state.
func (r *Registry) Fields(docType DocumentType) []FieldDefinition {
	doc, ok := r.Schema(docType)
	if !ok {
		return nil
	}
	out := make([]FieldDefinition, len(doc.Fields))
	copy(out, doc.Fields)
	return out
}

// FieldCount returns the number of fields a document type declares.
func (r *Registry) FieldCount(docType DocumentType) int {
	doc, ok := r.Schema(docType)
	if !ok {
		return 0
	}
	return len(doc.Fields)
}

// Label returns the human-readable label for a document type, falling back
// to the raw type identifier when the type is unknown.
func (r *Registry) Label(docType DocumentType) string {
	doc, ok := r.Schema(docType)
	if !ok {
		return string(docType)
	}
	return doc.Label
}

// Types lists every registered document type in stable order.
func (r *Registry) Types() []DocumentType {
	if r == nil {
		return nil
	}
	out := make([]DocumentType, len(r.types))
	copy(out, r.types)
	return out
}
