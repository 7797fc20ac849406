// Package scripterrors implements the error taxonomy from the evaluator's
// error handling design: every failure that can occur while lexing,
// parsing, or evaluating a script carries a Kind for test assertions, and
// formats with source context and a caret the way go-dws's compiler
// errors do, even though eval_script's public boundary collapses
// everything to a single opaque string (per the entry point contract).
package scripterrors

import (
	"fmt"
	"strings"

	"github.com/redis-eval/redis-eval/internal/token"
)

// Kind is the error taxonomy named in the error handling design.
type Kind int

const (
	LexError Kind = iota
	ParseError
	TypeError
	ArgError
	BudgetError
	UserError
	HostError
	JsonError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case ParseError:
		return "ParseError"
	case TypeError:
		return "TypeError"
	case ArgError:
		return "ArgError"
	case BudgetError:
		return "BudgetError"
	case UserError:
		return "UserError"
	case HostError:
		return "HostError"
	case JsonError:
		return "JsonError"
	default:
		return "Error"
	}
}

// ScriptError is a single failure with position and optional source
// context, tagged with its taxonomy Kind.
type ScriptError struct {
	Kind    Kind
	Message string
	Pos     token.Position
	Source  string
	File    string
}

// New constructs a ScriptError with no source context attached (the
// common case inside the evaluator, which doesn't retain the original
// script text once lexed).
func New(kind Kind, pos token.Position, message string) *ScriptError {
	return &ScriptError{Kind: kind, Message: message, Pos: pos}
}

// WithSource attaches the original script text and an optional file name,
// enabling Format to render a caret-annotated source line.
func (e *ScriptError) WithSource(source, file string) *ScriptError {
	e.Source = source
	e.File = file
	return e
}

// Error implements the error interface with the plain, single-line form.
func (e *ScriptError) Error() string {
	return e.Message
}

// Format renders the error with a "file:line:col" header, the offending
// source line, and a caret pointing at the column, matching the style of
// go-dws's CompilerError.Format.
func (e *ScriptError) Format() string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at line %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(e.Message)
	return sb.String()
}

func (e *ScriptError) sourceLine(line int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
