package generator

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/Masterminds/sprig/v3"
)

// Renderer handles template parsing and rendering with caching
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex
}

// NewRenderer creates a renderer with the sprig functions and repogen's helpers
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderString renders a template from a string.
// The name is used for caching and error messages, so a name must always
// be paired with the same template text.
func (r *Renderer) RenderString(name, templateStr string, data any) ([]byte, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return r.executeTemplate(tmpl, data)
	}

	tmpl, err := template.New(name).Funcs(r.funcMap).Option("missingkey=error").Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}

	r.mu.Lock()
	r.cache[name] = tmpl
	r.mu.Unlock()

	return r.executeTemplate(tmpl, data)
}

func (r *Renderer) executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

func defaultFuncMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["ucfirst"] = UcFirst // eloquent → Eloquent
	return funcs
}

// UcFirst upper-cases the first letter of s and leaves the rest untouched.
// Examples: eloquent → Eloquent, api → Api, userName → UserName
func UcFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
