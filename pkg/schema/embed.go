package schema

import (
	"embed"
	"io/fs"
)

//go:embed documents/*.yaml
var embeddedDocuments embed.FS

// EmbeddedFS returns the bundled document schemas. Callers may pass this
// filesystem to LoadFS or NewRegistry to use the default document set.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDocuments, "documents")
	if err != nil {
		// The embed directive guarantees the subpath exists, so panic is
		// acceptable here.
		panic(err)
	}
	return sub
}
