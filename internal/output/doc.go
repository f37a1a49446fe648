// Package output provides styled terminal output for repogen.
//
// # Usage
//
// Create a Printer over any io.Writer (usually the cobra command's output):
//
//	p := output.New(cmd.OutOrStdout())
//	p.Success("Repository created: app/Repositories/UserRepository.php")
//	p.Warn("Repository already exists: app/Repositories/Eloquent/UserRepositoryEloquent.php")
//	p.Line("Use --force to overwrite existing repository.")
//
// # Styling
//
// The package uses lipgloss for terminal styling, but abstracts
// these details away from callers:
//
//   - Success: 🔥 green bold
//   - Info: ℹ️ cyan
//   - Line: plain, unstyled
//   - Warn: ⚠️ yellow bold
//   - Error: ❌ red bold
//   - Step: indented gray
//
// Output is informational only. Nothing a Printer does feeds back into
// control flow.
package output
