package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes styled lines to an io.Writer.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to out. A nil writer means os.Stdout.
func New(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// Success prints a success message with 🔥 emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	p.Success("Interface created: app/Repositories/Interface/UserRepositoryInterface.php")
func (p *Printer) Success(msg string) {
	p.println(successStyle.Render("🔥 " + msg))
}

// Error prints an error message with ❌ emoji and red color.
// Use this for failures that need user attention.
func (p *Printer) Error(msg string) {
	p.println(errorStyle.Render("❌ " + msg))
}

// Warn prints a warning with ⚠️ emoji and yellow color.
func (p *Printer) Warn(msg string) {
	p.println(warnStyle.Render("⚠️  " + msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
// Use this for status updates or explanations.
func (p *Printer) Info(msg string) {
	p.println(infoStyle.Render("ℹ️  " + msg))
}

// Line prints msg as is.
func (p *Printer) Line(msg string) {
	p.println(msg)
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	p.Step("repogen make:repository User --type=eloquent")
func (p *Printer) Step(msg string) {
	p.println(stepStyle.Render("   " + msg))
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.out, s)
}
