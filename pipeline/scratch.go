package pipeline

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/chromana/chromana/errors"
)

// Scratch is the namespaced working area for one build invocation.
// Every invocation gets its own UUID directory under the configured
// temp root, so concurrent builds over the same checkout never collide
// on staged artwork or feature files. Purge removes the whole tree at
// once.
type Scratch struct {
	BuildID string
	Root    string
}

// NewScratch creates temp/<build-id>/ under tempRoot.
func NewScratch(tempRoot string) (*Scratch, error) {
	id := uuid.New().String()
	root := filepath.Join(tempRoot, id)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create scratch directory %s", root)
	}
	return &Scratch{BuildID: id, Root: root}, nil
}

// Dir returns (and creates) the scratch subdirectory for one icon set.
func (s *Scratch) Dir(code string) (string, error) {
	dir := filepath.Join(s.Root, code)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create scratch directory %s", dir)
	}
	return dir, nil
}

// Purge removes the invocation's whole scratch tree.
func (s *Scratch) Purge() error {
	return os.RemoveAll(s.Root)
}
