package interp

import "github.com/redis-eval/redis-eval/internal/value"

// cfKind tags the outcome of executing a statement or block, per the
// tree-walking evaluator design of spec.md §4.3: a statement either
// falls through (cfNone), returns a value list out of its enclosing
// function (cfReturn), or breaks out of its enclosing loop (cfBreak).
type cfKind int

const (
	cfNone cfKind = iota
	cfReturn
	cfBreak
)

// controlFlow is a statement's or block's execution outcome.
type controlFlow struct {
	Kind   cfKind
	Values []value.Value // populated only for cfReturn
}

var none = controlFlow{Kind: cfNone}
var brk = controlFlow{Kind: cfBreak}

func ret(values []value.Value) controlFlow {
	return controlFlow{Kind: cfReturn, Values: values}
}
