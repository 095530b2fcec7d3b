package template

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Engine materializes a project tree to disk. The walk is depth-first:
// each directory is created before its children are visited, and both
// file names and file contents go through token substitution.
//
// Writes are all-or-nothing from the user's perspective: every path the
// engine creates is recorded, and on any failure (or context cancellation
// mid-walk) the recorded paths are removed in reverse creation order, so
// re-running the tool is always safe.
type Engine struct {
	logger *slog.Logger
	onFile func(relPath string)
}

// NewEngine creates an Engine logging through the given logger.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// OnFile registers a callback invoked after each file is written, with
// the path relative to the destination root. Used to drive progress UI.
func (e *Engine) OnFile(fn func(relPath string)) {
	e.onFile = fn
}

// Render writes the tree under destRoot. The destination must not exist,
// or must be an empty directory; anything else fails with
// ErrDestinationExists before a single byte is written.
func (e *Engine) Render(ctx context.Context, tree *Node, destRoot string, rctx RenderContext) (err error) {
	absRoot, err := filepath.Abs(destRoot)
	if err != nil {
		return fmt.Errorf("resolve destination root: %w", err)
	}

	var created []string
	defer func() {
		if err == nil {
			return
		}
		// Best-effort rollback, children before parents.
		for i := len(created) - 1; i >= 0; i-- {
			if rmErr := os.Remove(created[i]); rmErr != nil {
				e.logger.Warn("cleanup failed", "path", created[i], "error", rmErr)
			}
		}
	}()

	switch info, statErr := os.Stat(absRoot); {
	case statErr == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrDestinationExists, absRoot)
		}
		entries, readErr := os.ReadDir(absRoot)
		if readErr != nil {
			return fmt.Errorf("read destination root: %w", readErr)
		}
		if len(entries) > 0 {
			return fmt.Errorf("%w: %s", ErrDestinationExists, absRoot)
		}
	case os.IsNotExist(statErr):
		// os.Mkdir, not MkdirAll: intermediate parents would not be
		// recorded for rollback, and the destination is always a direct
		// child of the working directory anyway.
		if mkErr := os.Mkdir(absRoot, 0o755); mkErr != nil {
			return fmt.Errorf("create destination root: %w", mkErr)
		}
		created = append(created, absRoot)
	default:
		return fmt.Errorf("stat destination root: %w", statErr)
	}

	if err = e.walk(ctx, tree, absRoot, absRoot, rctx, &created); err != nil {
		return err
	}

	e.logger.Info("project rendered", "root", absRoot, "files", tree.Files())
	return nil
}

// walk visits the children of node, writing them under dir.
func (e *Engine) walk(ctx context.Context, node *Node, dir, root string, rctx RenderContext, created *[]string) error {
	for _, child := range node.Children {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := rctx.Apply(child.Name)
		if err := CheckResolved(name); err != nil {
			return fmt.Errorf("node name %q: %w", child.Name, err)
		}

		path := filepath.Join(dir, name)
		if err := validatePath(root, path); err != nil {
			return err
		}

		switch child.Kind {
		case KindDir:
			if err := os.Mkdir(path, 0o755); err != nil {
				if os.IsExist(err) {
					return fmt.Errorf("%w: %s", ErrFileExists, path)
				}
				return fmt.Errorf("create directory %s: %w", path, err)
			}
			*created = append(*created, path)
			e.logger.Debug("directory created", "path", path)

			if err := e.walk(ctx, child, path, root, rctx, created); err != nil {
				return err
			}

		case KindFile:
			content := rctx.Apply(child.Content)
			if err := CheckResolved(content); err != nil {
				return fmt.Errorf("file %s: %w", path, err)
			}

			f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
			if err != nil {
				if os.IsExist(err) {
					return fmt.Errorf("%w: %s", ErrFileExists, path)
				}
				return fmt.Errorf("create file %s: %w", path, err)
			}
			*created = append(*created, path)

			_, werr := f.WriteString(content)
			cerr := f.Close()
			if werr != nil {
				return fmt.Errorf("write file %s: %w", path, werr)
			}
			if cerr != nil {
				return fmt.Errorf("close file %s: %w", path, cerr)
			}
			e.logger.Debug("file written", "path", path, "bytes", len(content))

			if e.onFile != nil {
				rel, relErr := filepath.Rel(root, path)
				if relErr != nil {
					rel = path
				}
				e.onFile(filepath.ToSlash(rel))
			}
		}
	}
	return nil
}

// validatePath ensures a rendered path stays inside the destination root.
func validatePath(root, path string) error {
	cleaned := filepath.Clean(path)
	if cleaned != root && !strings.HasPrefix(cleaned, root+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathTraversal, path)
	}
	return nil
}
