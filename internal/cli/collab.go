package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qanoonsoft/docwizard/pkg/generate"
)

// envAuth satisfies the authentication contract from the DOCWIZARD_USER
// environment variable. The CLI has no session machinery; presence of the
// variable is the presence signal.
type envAuth struct{}

func (envAuth) UserID() (string, bool) {
	user := strings.TrimSpace(os.Getenv("DOCWIZARD_USER"))
	return user, user != ""
}

// fileStore persists generated artifacts as JSON files in a directory.
type fileStore struct {
	dir string
}

func (s fileStore) Save(ctx context.Context, artifact generate.Artifact) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	name := fmt.Sprintf("%s-%d.json", artifact.DocumentType, time.Now().UnixNano())
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// printLedger reports credit consumption to the terminal; the real ledger
// lives with the billing collaborator.
type printLedger struct {
	driver PromptDriver
}

func (l printLedger) Record(ctx context.Context, userID string, credits int) {
	l.driver.Info(fmt.Sprintf("charged %d credit(s) to %s", credits, userID))
}
