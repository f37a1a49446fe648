package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/repogen/internal/generator"
)

// Kind is a repository implementation style. It names both the folder and
// the class suffix of a typed repository.
type Kind string

const (
	KindEloquent Kind = "eloquent"
	KindQuery    Kind = "query"
	KindAPI      Kind = "api"
)

// Kinds lists every valid kind in the order they are documented.
var Kinds = []Kind{KindEloquent, KindQuery, KindAPI}

// ParseKind normalizes a --type token (trim, lower-case) and reports whether
// it names a valid kind. The normalized token is returned either way so
// callers can report it.
func ParseKind(token string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(token)))
	for _, valid := range Kinds {
		if k == valid {
			return k, true
		}
	}
	return k, false
}

// SplitTypeSpec splits a comma-separated --type value into raw tokens.
// Empty tokens are kept; they are reported as invalid like any other.
func SplitTypeSpec(spec string) []string {
	return strings.Split(spec, ",")
}

// Title is the folder name and class suffix: eloquent → Eloquent.
func (k Kind) Title() string {
	return generator.UcFirst(string(k))
}

func (k Kind) String() string {
	return string(k)
}

// ErrInvalidName is returned for names that cannot be placed inside the
// Repositories directory.
var ErrInvalidName = errors.New("invalid repository name")

// ValidateName accepts any identifier-ish name, including lower-case or
// unusual ones, but rejects names that are empty, padded with whitespace,
// or that would escape the output directory.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`) || strings.Contains(name, ".."):
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidName, name)
	}
	return nil
}
