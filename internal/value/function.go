package value

import "github.com/redis-eval/redis-eval/internal/ast"

// Function is a script-defined function: parameter names, a variadic
// flag, and a body. Per spec.md §3, closures capture no lexical
// environment — every call gets a fresh environment binding only its
// parameters and varargs (a documented limitation carried from the
// distilled spec; see DESIGN.md).
type Function struct {
	Params     []string
	IsVariadic bool
	Body       ast.Block
}
