package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/repogen/internal/config"
	"github.com/simonhull/firebird-suite/repogen/internal/generators/repository"
	"github.com/simonhull/firebird-suite/repogen/internal/output"
	"github.com/simonhull/firebird-suite/repogen/internal/project"
)

// MakeRepositoryCmd creates the 'make:repository' command
func MakeRepositoryCmd(fs afero.Fs) *cobra.Command {
	var typeSpec, projectDir string
	var force, dryRun bool

	cmd := &cobra.Command{
		Use:     "make:repository <name>",
		Aliases: []string{"make-repository"},
		Short:   "Generate a repository with Eloquent, Query Builder, or API implementations",
		Long: `Generate a repository class for an entity.

Without --type a single class is written:
  app/Repositories/{Name}Repository.php

With --type a shared interface plus one class per type is written:
  app/Repositories/Interface/{Name}RepositoryInterface.php
  app/Repositories/{Type}/{Name}Repository{Type}.php

Available types: eloquent, query, api (comma-separated, case-insensitive).
Invalid types are reported and skipped; the remaining types still run.`,
		Example: `  repogen make:repository User
  repogen make:repository Product --type=query,api
  repogen make:repository Order --type=eloquent --force
  repogen make:repository Invoice --type=api --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(fs, projectDir)
			if err != nil {
				return err
			}

			if !project.IsLaravelProject(fs, projectDir) {
				log.Debug().Str("project", projectDir).Msg("no artisan script found; generating anyway")
			}

			log.Debug().
				Str("project", projectDir).
				Str("app_path", cfg.AppPath).
				Str("namespace", cfg.Namespace).
				Msg("loaded config")

			gen := repository.New(repository.Options{
				Fs:         fs,
				ProjectDir: projectDir,
				Config:     cfg,
				Logger:     &log.Logger,
			})

			res, err := gen.Generate(cmd.Context(), repository.Request{
				Name:     args[0],
				TypeSpec: typeSpec,
				Force:    force,
				DryRun:   dryRun,
			})
			if res != nil {
				report(output.New(cmd.OutOrStdout()), res)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&typeSpec, "type", "t", "", "Comma-separated repository types: eloquent, query, api")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without creating files")
	cmd.Flags().StringVarP(&projectDir, "path", "p", ".", "Project directory")

	return cmd
}

// report prints every outcome in order. Hints follow the outcome they
// belong to: an aborted run gets an info hint, a skipped type a plain one.
func report(p *output.Printer, res *repository.Result) {
	for _, o := range res.Outcomes {
		msg := o.Message()
		switch o.Level() {
		case repository.LevelSuccess:
			p.Success(msg)
		case repository.LevelInfo:
			p.Info(msg)
		case repository.LevelWarn:
			p.Warn(msg)
		case repository.LevelError:
			p.Error(msg)
		default:
			p.Line(msg)
		}

		switch hint := o.Hint(); {
		case hint == "":
		case o.Action == repository.ActionConflict:
			p.Info(hint)
		default:
			p.Line(hint)
		}
	}
}
