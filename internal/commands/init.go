package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/repogen/internal/config"
	"github.com/simonhull/firebird-suite/repogen/internal/generator"
	"github.com/simonhull/firebird-suite/repogen/internal/output"
	"github.com/simonhull/firebird-suite/repogen/internal/project"
)

// InitCmd creates the 'init' command, which writes a .repogen.yml
func InitCmd(fs afero.Fs) *cobra.Command {
	var projectDir, appPath, namespace, extension string
	var force, dryRun bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a .repogen.yml with the project's layout",
		Long: `Write a .repogen.yml describing where repositories are generated.

Keys:
  app_path   application source root, relative to the project (default: app)
  namespace  root namespace of generated classes (default: App)
  extension  file extension of generated files (default: .php)

Unless --app-path or --namespace is given, they are taken from the PSR-4
autoload section of composer.json when the project has one.

Every key can also be set with REPOGEN_APP_PATH, REPOGEN_NAMESPACE and
REPOGEN_EXTENSION.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := output.New(cmd.OutOrStdout())

			cfg := &config.Config{AppPath: appPath, Namespace: namespace, Extension: extension}
			if err := seedFromComposer(cmd, p, fs, projectDir, cfg); err != nil {
				return err
			}

			// Written exactly as Load will read it back
			cfg.Normalize()
			if err := cfg.Validate(); err != nil {
				return err
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}

			path := filepath.Join(projectDir, config.FileName)
			op := &generator.WriteFileOp{Fs: fs, Path: path, Content: data, Mode: 0644}

			err = generator.Execute(cmd.Context(), []generator.Operation{op}, generator.ExecuteOptions{
				DryRun:  dryRun,
				Force:   force,
				Printer: p,
			})
			if errors.Is(err, generator.ErrFileExists) {
				p.Info("Use --force to overwrite it.")
				return fmt.Errorf("config already exists: %s", path)
			}
			if err != nil {
				return err
			}

			p.Info("Next steps:")
			p.Step("repogen make:repository User --type=eloquent")
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectDir, "path", "p", ".", "Project directory")
	cmd.Flags().StringVar(&appPath, "app-path", config.DefaultAppPath, "Application source root")
	cmd.Flags().StringVar(&namespace, "namespace", config.DefaultNamespace, "Root namespace of generated classes")
	cmd.Flags().StringVar(&extension, "extension", config.DefaultExtension, "File extension of generated files")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing .repogen.yml")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without creating files")

	return cmd
}

// seedFromComposer fills app_path and namespace from composer.json for the
// flags the user left at their defaults.
func seedFromComposer(cmd *cobra.Command, p *output.Printer, fs afero.Fs, projectDir string, cfg *config.Config) error {
	info, err := project.DetectComposer(fs, projectDir)
	if err != nil {
		return err
	}
	if info == nil {
		log.Debug().Str("project", projectDir).Msg("no composer.json found; using flag values")
		return nil
	}

	log.Debug().
		Str("composer", info.ConfigPath).
		Str("package", info.Name).
		Str("namespace", info.Namespace).
		Str("app_path", info.AppPath).
		Msg("detected composer package")

	if info.Namespace == "" {
		return nil
	}
	if !cmd.Flags().Changed("app-path") {
		cfg.AppPath = info.AppPath
	}
	if !cmd.Flags().Changed("namespace") {
		cfg.Namespace = info.Namespace
	}
	p.Info(fmt.Sprintf("Using %s\\ → %s from %s", cfg.Namespace, cfg.AppPath, filepath.Base(info.ConfigPath)))
	return nil
}
