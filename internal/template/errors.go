// Package template holds the project template catalog, the blueprint
// expander, and the rendering engine that materializes a resolved project
// tree to disk with placeholder substitution.
package template

import "errors"

// Sentinel errors for catalog lookup and rendering.
var (
	// ErrUnknownTemplate indicates the requested template name is not
	// registered in the catalog.
	ErrUnknownTemplate = errors.New("template: unknown template")

	// ErrUnresolvedPlaceholder indicates a {{token}} marker survived
	// substitution; rendered output must never leak placeholders.
	ErrUnresolvedPlaceholder = errors.New("template: unresolved placeholder")

	// ErrDestinationExists indicates the destination root already contains
	// files; scaffolding never overwrites existing work.
	ErrDestinationExists = errors.New("template: destination already exists and is not empty")

	// ErrFileExists indicates an individual destination file already exists.
	ErrFileExists = errors.New("template: destination file already exists")

	// ErrPathTraversal indicates a rendered path would escape the
	// destination root.
	ErrPathTraversal = errors.New("template: path escapes destination root")

	// ErrBlueprintCollision indicates a blueprint name matches an entry
	// the template already places in the application package, such as
	// "templates" or "static". Grafting it would be silently lossy.
	ErrBlueprintCollision = errors.New("template: blueprint name collides with a template entry")
)
