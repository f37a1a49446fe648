package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/repogen"
	"github.com/simonhull/firebird-suite/repogen/internal/config"
)

const dir = "/project"

// run executes the root command on fs with args and returns stdout and stderr.
func run(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd(fs)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func assertFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	found, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, found, "expected %s to exist", path)
}

func assertNoPath(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	found, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, found, "expected %s not to exist", path)
}

func TestMakeRepository_Plain(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, _, err := run(t, fs, "make:repository", "User", "--path", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "app", "Repositories", "UserRepository.php")
	assert.Contains(t, out, "Repository created: "+path)

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "class UserRepository")
	assert.Contains(t, string(content), "public function getAll()")
	assert.Contains(t, string(content), "public function findById($id)")
}

func TestRootCmd_WritesToDisk(t *testing.T) {
	tmp := t.TempDir()
	var stdout bytes.Buffer

	cmd := RootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"make:repository", "User", "--path", tmp})
	require.NoError(t, cmd.Execute())

	path := filepath.Join(tmp, "app", "Repositories", "UserRepository.php")
	assert.Contains(t, stdout.String(), "Repository created: "+path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestMakeRepository_PlainConflict(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, _, err := run(t, fs, "make:repository", "User", "--path", dir)
	require.NoError(t, err)

	// Conflicts are reported, not failures
	out, _, err := run(t, fs, "make:repository", "User", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Repository already exists:")
	assert.Contains(t, out, "Use --force to overwrite existing repository.")
	assert.NotContains(t, out, "Repository created")

	out, _, err = run(t, fs, "make:repository", "User", "--path", dir, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Repository created:")
}

func TestMakeRepository_Typed(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, _, err := run(t, fs, "make-repository", "Product", "--type=query,api", "--force", "--path", dir)
	require.NoError(t, err)

	repos := filepath.Join(dir, "app", "Repositories")
	assertFile(t, fs, filepath.Join(repos, "Interface", "ProductRepositoryInterface.php"))
	assertFile(t, fs, filepath.Join(repos, "Query", "ProductRepositoryQuery.php"))
	assertFile(t, fs, filepath.Join(repos, "Api", "ProductRepositoryApi.php"))
	assert.Contains(t, out, "Successfully created repositories of type: query, api")
}

func TestMakeRepository_InvalidAndRepeat(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, _, err := run(t, fs, "make:repository", "User", "-t", "eloquent,foo", "-p", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid type 'foo': choose eloquent, query, or api.")
	assert.Contains(t, out, "Successfully created repositories of type: eloquent")
	assertNoPath(t, fs, filepath.Join(dir, "app", "Repositories", "Foo"))

	out, _, err = run(t, fs, "make:repository", "User", "-t", "Eloquent", "-p", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Interface already exists:")
	assert.Contains(t, out, "Repository already exists:")
	assert.Contains(t, out, "No new repositories were created.")
}

func TestMakeRepository_DryRun(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, _, err := run(t, fs, "make:repository", "User", "--type=api", "--dry-run", "--path", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "[DRY RUN] Interface created:")
	assert.Contains(t, out, "[DRY RUN] Repository created:")
	assertNoPath(t, fs, filepath.Join(dir, "app"))
}

func TestMakeRepository_UsesConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, config.FileName), []byte("app_path: src\nnamespace: Shop\n"), 0644))

	_, _, err := run(t, fs, "make:repository", "Cart", "--type=eloquent", "--path", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "src", "Repositories", "Eloquent", "CartRepositoryEloquent.php")
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `namespace Shop\Repositories\Eloquent;`)
}

func TestMakeRepository_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, _, err := run(t, fs, "make:repository", "--path", dir)
	require.Error(t, err, "name is required")

	_, _, err = run(t, fs, "make:repository", "../User", "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid repository name")

	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, config.FileName), []byte("app_path: /abs\n"), 0644))
	_, _, err = run(t, fs, "make:repository", "User", "--path", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMakeRepository_FilesystemFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, _, err := run(t, fs, "make:repository", "User", "--path", dir)
	require.Error(t, err)
}

func TestMakeRepository_VerboseLogsToStderr(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, stderr, err := run(t, fs, "make:repository", "User", "--path", dir, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "generating repository")

	_, stderr, err = run(t, fs, "make:repository", "Other", "--path", dir)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, _, err := run(t, afero.NewMemMapFs(), "make:repository", "User", "--path", dir, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse log level")
}

func TestInit(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join(dir, config.FileName)

	out, _, err := run(t, fs, "init", "--path", dir, "--namespace", "Acme")
	require.NoError(t, err)
	assert.Contains(t, out, "🔥 Create "+path)
	assert.Contains(t, out, "Next steps:")

	cfg, err := config.Load(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "Acme", cfg.Namespace)
	assert.Equal(t, config.DefaultAppPath, cfg.AppPath)

	out, _, err = run(t, fs, "init", "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config already exists")
	assert.Contains(t, out, "Use --force to overwrite it.")

	_, _, err = run(t, fs, "init", "--path", dir, "--force")
	require.NoError(t, err)
	cfg, err = config.Load(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultNamespace, cfg.Namespace)
}

func TestInit_DryRun(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, _, err := run(t, fs, "init", "--path", dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "🔥 [DRY RUN] Create "+filepath.Join(dir, config.FileName))
	assertNoPath(t, fs, filepath.Join(dir, config.FileName))
}

// init either refuses a layout or writes one that make:repository can use.
func TestInit_OutputLoadsBack(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		wantPath string
	}{
		{"dot slash", []string{"--app-path", "./"}, "app_path must not be empty", ""},
		{"blank", []string{"--app-path", " "}, "app_path must not be empty", ""},
		{"backs out to root", []string{"--app-path", "app/../"}, "app_path must not be empty", ""},
		{"escapes project", []string{"--app-path", "x/../../y"}, "must stay inside", ""},
		{"absolute", []string{"--app-path", "/srv/app"}, "must be relative", ""},
		{"blank namespace", []string{"--namespace", ` \ `}, "namespace must not be empty", ""},
		{"trailing slash", []string{"--app-path", "./src/"}, "", "src"},
		{"inner dots", []string{"--app-path", "src/./lib/../app"}, "", filepath.Join("src", "app")},
		{"padded namespace", []string{"--namespace", ` Shop\ `}, "", config.DefaultAppPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()

			_, _, err := run(t, fs, append([]string{"init", "--path", dir}, tt.args...)...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.wantErr)
				assertNoPath(t, fs, filepath.Join(dir, config.FileName))
				return
			}
			require.NoError(t, err)

			cfg, err := config.Load(fs, dir)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, cfg.AppPath)

			_, _, err = run(t, fs, "make:repository", "User", "--path", dir)
			require.NoError(t, err)
			assertFile(t, fs, filepath.Join(dir, tt.wantPath, "Repositories", "UserRepository.php"))
		})
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "repogen "+repogen.Version)
}

func TestInit_SeedsFromComposer(t *testing.T) {
	fs := afero.NewMemMapFs()
	composer := `{"name": "acme/shop", "autoload": {"psr-4": {"Shop\\": "./src/"}}}`
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "composer.json"), []byte(composer), 0644))

	out, stderr, err := run(t, fs, "init", "--path", dir, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "from composer.json")
	assert.Contains(t, stderr, "detected composer package")
	assert.Contains(t, stderr, "acme/shop")

	cfg, err := config.Load(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "Shop", cfg.Namespace)
	assert.Equal(t, "src", cfg.AppPath)

	// Explicit flags win over composer.json
	_, _, err = run(t, fs, "init", "--path", dir, "--force", "--namespace", "Other")
	require.NoError(t, err)
	cfg, err = config.Load(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "Other", cfg.Namespace)
	assert.Equal(t, "src", cfg.AppPath)
}
