// Package repository generates repository classes and their shared
// interface.
//
// Without a kind, a single plain repository is written to
// Repositories/{Name}Repository. With one or more kinds, a shared
// Repositories/Interface/{Name}RepositoryInterface is written alongside one
// Repositories/{Kind}/{Name}Repository{Kind} per kind. Existing files are
// kept unless the request is forced.
package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/simonhull/firebird-suite/repogen/internal/config"
	"github.com/simonhull/firebird-suite/repogen/internal/generator"
)

// Request describes one scaffolding run.
type Request struct {
	Name string
	// TypeSpec is the raw comma-separated --type value. Empty selects the
	// plain repository.
	TypeSpec string
	Force    bool
	DryRun   bool
}

// Options configures a Generator. Zero values fall back to the OS
// filesystem, the current directory, config.Default() and a no-op logger.
type Options struct {
	Fs         afero.Fs
	ProjectDir string
	Config     *config.Config
	Logger     *zerolog.Logger
}

// Generator generates repository files for one project.
type Generator struct {
	fs        afero.Fs
	root      string // {project}/{app_path}/Repositories
	namespace string
	ext       string
	renderer  *generator.Renderer
	log       zerolog.Logger
}

// New creates a repository generator.
func New(opts Options) *Generator {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Generator{
		fs:        fs,
		root:      filepath.Join(opts.ProjectDir, cfg.AppPath, "Repositories"),
		namespace: cfg.Namespace,
		ext:       cfg.Extension,
		renderer:  generator.NewRenderer(),
		log:       log.With().Str("generator", "repository").Logger(),
	}
}

// PlainPath is where the untyped repository for name lives.
func (g *Generator) PlainPath(name string) string {
	return filepath.Join(g.root, name+"Repository"+g.ext)
}

// InterfacePath is where the interface shared by all kinds lives.
func (g *Generator) InterfacePath(name string) string {
	return filepath.Join(g.root, "Interface", name+"RepositoryInterface"+g.ext)
}

// TypedPath is where the repository of kind k lives.
func (g *Generator) TypedPath(name string, k Kind) string {
	return filepath.Join(g.root, k.Title(), name+"Repository"+k.Title()+g.ext)
}

// Generate runs one request to completion. Existing files, conflicts and
// invalid kinds are reported as outcomes; the returned error is reserved for
// invalid names and filesystem failures.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}

	r := &run{
		g:       g,
		req:     req,
		result:  &Result{},
		planned: make(map[string]bool),
	}

	g.log.Debug().
		Str("name", req.Name).
		Str("type", req.TypeSpec).
		Bool("force", req.Force).
		Bool("dry_run", req.DryRun).
		Msg("generating repository")

	var err error
	if req.TypeSpec == "" {
		err = r.plain(ctx)
	} else {
		err = r.typed(ctx)
	}
	return r.result, err
}

// run holds the state of a single Generate call.
type run struct {
	g      *Generator
	req    Request
	result *Result
	// planned tracks paths a dry run would have written, so later
	// existence checks see them.
	planned map[string]bool
}

func (r *run) plain(ctx context.Context) error {
	path := r.g.PlainPath(r.req.Name)

	written, err := r.place(ctx, TargetPlain, "", path)
	if err != nil {
		return err
	}
	if !written {
		r.result.Aborted = true
		r.result.add(Outcome{Action: ActionConflict, Target: TargetPlain, Path: path})
		return nil
	}

	r.result.add(Outcome{Action: ActionCreated, Target: TargetPlain, Path: path, DryRun: r.req.DryRun})
	return nil
}

func (r *run) typed(ctx context.Context) error {
	for _, token := range SplitTypeSpec(r.req.TypeSpec) {
		kind, ok := ParseKind(token)
		if !ok {
			r.g.log.Debug().Str("token", string(kind)).Msg("invalid kind")
			r.result.add(Outcome{Action: ActionInvalidKind, Token: string(kind)})
			continue
		}

		ifacePath := r.g.InterfacePath(r.req.Name)
		written, err := r.place(ctx, TargetInterface, "", ifacePath)
		if err != nil {
			return err
		}
		if written {
			r.result.add(Outcome{Action: ActionCreated, Target: TargetInterface, Kind: kind, Path: ifacePath, DryRun: r.req.DryRun})
		} else {
			r.result.add(Outcome{Action: ActionExists, Target: TargetInterface, Kind: kind, Path: ifacePath})
		}

		repoPath := r.g.TypedPath(r.req.Name, kind)
		written, err = r.place(ctx, TargetTyped, kind, repoPath)
		if err != nil {
			return err
		}
		if !written {
			r.result.add(Outcome{Action: ActionSkipped, Target: TargetTyped, Kind: kind, Path: repoPath})
			continue
		}

		r.result.add(Outcome{Action: ActionCreated, Target: TargetTyped, Kind: kind, Path: repoPath, DryRun: r.req.DryRun})
		r.result.Created = append(r.result.Created, kind)
	}

	if len(r.result.Created) == 0 {
		r.result.add(Outcome{Action: ActionNothingCreated})
	} else {
		created := make([]Kind, len(r.result.Created))
		copy(created, r.result.Created)
		r.result.add(Outcome{Action: ActionSummary, Kinds: created})
	}
	return nil
}

// place writes target t to path unless it exists and the run is not forced.
// It reports whether the file was written (or planned, in a dry run).
func (r *run) place(ctx context.Context, t Target, kind Kind, path string) (bool, error) {
	log := r.g.log.With().Str("target", t.String()).Str("path", path).Logger()

	if !r.req.Force && r.planned[path] {
		log.Debug().Msg("already planned, keeping")
		return false, nil
	}

	content, err := r.g.Render(t, r.req.Name, kind)
	if err != nil {
		return false, err
	}

	op := &generator.WriteFileOp{Fs: r.g.fs, Path: path, Content: content, Mode: 0644}
	if err := op.Validate(ctx, r.req.Force); err != nil {
		if errors.Is(err, generator.ErrFileExists) {
			log.Debug().Msg("exists, keeping")
			return false, nil
		}
		return false, err
	}

	if r.req.DryRun {
		log.Debug().Msg("dry run, not writing")
		r.planned[path] = true
		r.result.Files = append(r.result.Files, path)
		return true, nil
	}

	if err := op.Execute(ctx); err != nil {
		return false, err
	}
	log.Debug().Int("bytes", len(content)).Msg("written")
	r.result.Files = append(r.result.Files, path)
	return true, nil
}

// Render returns the content of target t for name and kind. Kind is ignored
// for the plain repository and the interface.
func (g *Generator) Render(t Target, name string, kind Kind) ([]byte, error) {
	tmplName, text := templateFor(t)
	content, err := g.renderer.RenderString(tmplName, text, templateData{
		Name:      name,
		Kind:      string(kind),
		Namespace: g.namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s for %s: %w", t, name, err)
	}
	return content, nil
}
