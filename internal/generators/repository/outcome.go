package repository

import (
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/repogen/internal/generator"
)

// Action is what happened to one target, or a run-level report.
type Action int

const (
	ActionCreated        Action = iota // file written (or planned, in a dry run)
	ActionExists                       // shared interface kept as is
	ActionSkipped                      // typed repository kept as is
	ActionConflict                     // plain repository exists; run aborted
	ActionInvalidKind                  // --type token not recognised
	ActionNothingCreated               // typed run wrote no repository
	ActionSummary                      // typed run wrote at least one repository
)

// Target identifies which of the three file shapes an outcome is about.
type Target int

const (
	TargetNone Target = iota
	TargetPlain
	TargetInterface
	TargetTyped
)

func (t Target) String() string {
	switch t {
	case TargetPlain:
		return "repository"
	case TargetInterface:
		return "interface"
	case TargetTyped:
		return "typed repository"
	default:
		return "none"
	}
}

// Level tells the output sink how to present an outcome.
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelLine
	LevelWarn
	LevelError
)

// ForceHint follows every outcome that a rerun with --force would change.
const ForceHint = "Use --force to overwrite existing repository."

// Outcome is one user-visible report produced by a generation run.
type Outcome struct {
	Action Action
	Target Target
	Kind   Kind   // typed outcomes
	Token  string // ActionInvalidKind: the normalized token
	Path   string
	Kinds  []Kind // ActionSummary: kinds created, in order
	DryRun bool
}

// Level maps the action to its presentation level.
func (o Outcome) Level() Level {
	switch o.Action {
	case ActionCreated:
		return LevelSuccess
	case ActionExists, ActionNothingCreated:
		return LevelLine
	case ActionSkipped:
		return LevelWarn
	case ActionConflict, ActionInvalidKind:
		return LevelError
	default:
		return LevelInfo
	}
}

// Message is the text shown to the user.
func (o Outcome) Message() string {
	switch o.Action {
	case ActionCreated:
		label := "Repository"
		if o.Target == TargetInterface {
			label = "Interface"
		}
		msg := fmt.Sprintf("%s created: %s", label, o.Path)
		if o.DryRun {
			msg = generator.DryRunPrefix + msg
		}
		return msg
	case ActionExists:
		return fmt.Sprintf("Interface already exists: %s", o.Path)
	case ActionSkipped, ActionConflict:
		return fmt.Sprintf("Repository already exists: %s", o.Path)
	case ActionInvalidKind:
		return fmt.Sprintf("Invalid type '%s': choose eloquent, query, or api.", o.Token)
	case ActionNothingCreated:
		return "No new repositories were created."
	case ActionSummary:
		names := make([]string, len(o.Kinds))
		for i, k := range o.Kinds {
			names[i] = string(k)
		}
		return "Successfully created repositories of type: " + strings.Join(names, ", ")
	default:
		return ""
	}
}

// Hint returns the follow-up line for outcomes that --force would change.
func (o Outcome) Hint() string {
	if o.Action == ActionConflict || o.Action == ActionSkipped {
		return ForceHint
	}
	return ""
}

// Result collects everything one Generate call reported.
type Result struct {
	Outcomes []Outcome
	// Created lists the kinds whose typed repository was written, in order.
	Created []Kind
	// Files lists every path written (or planned, in a dry run), in order.
	Files []string
	// Aborted is set when the plain repository already existed.
	Aborted bool
}

func (r *Result) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}
