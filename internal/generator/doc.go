// Package generator provides the file operations and template rendering
// shared by repogen's generators.
//
// # Operations
//
// Every file a generator produces is described by an Operation. Operations
// are validated before they run, so a conflict is reported before anything
// touches the disk:
//
//	op := &generator.WriteFileOp{Fs: fs, Path: path, Content: content, Mode: 0644}
//	if err := op.Validate(ctx, force); errors.Is(err, generator.ErrFileExists) {
//	    // keep the existing file
//	}
//
// All operations go through an afero.Fs, so tests run against
// afero.NewMemMapFs() and the CLI against afero.NewOsFs().
//
// # Rendering
//
// Renderer executes text/template sources with the sprig function map plus
// a few helpers of our own (ucfirst). Parsed templates are cached by name.
package generator
