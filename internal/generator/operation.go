package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrFileExists is returned by Validate when the target already exists and
// force is off.
var ErrFileExists = errors.New("file already exists")

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create app/Repositories/UserRepository.php (234 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp creates or overwrites a file with content.
//
// Validation behavior:
//   - Checks for file conflicts unless force=true
//   - Allows empty content (zero bytes) but rejects nil content
//
// Execution behavior:
//   - Creates parent directories if needed
//   - Writes the file with the specified Mode
type WriteFileOp struct {
	Fs      afero.Fs    // Backing filesystem (defaults to the OS filesystem)
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	if !force {
		exists, err := Exists(op.fs(), op.Path)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrFileExists, op.Path)
		}
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(op.Path)
	if err := op.fs().MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	mode := op.Mode
	if mode == 0 {
		mode = 0644
	}
	if err := afero.WriteFile(op.fs(), op.Path, op.Content, mode); err != nil {
		return fmt.Errorf("writing %s: %w", op.Path, err)
	}
	return nil
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

func (op *WriteFileOp) fs() afero.Fs {
	if op.Fs == nil {
		return afero.NewOsFs()
	}
	return op.Fs
}

// Exists reports whether path exists on fs. Errors other than "not exist"
// (permission denied, I/O) are returned.
func Exists(fsys afero.Fs, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}
