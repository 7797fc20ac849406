package interp

import (
	"math"

	"github.com/redis-eval/redis-eval/internal/value"
)

// hostBuiltins is the string-keyed dispatch table backing every
// value.KindHostFunction value (§4.4). Names match the dotted form a
// script sees (e.g. "math.floor"); top-level names (tonumber, pcall,
// ...) are bare.
var hostBuiltins = map[string]hostFunc{
	"tonumber": biToNumber,
	"tostring": biToString,
	"type":     biType,
	"error":    biError,
	"assert":   biAssert,
	"pairs":    biPairs,
	"ipairs":   biIPairs,
	"next":     biNext,
	"unpack":   biUnpack,
	"select":   biSelect,
	"rawget":   biRawGet,
	"rawset":   biRawSet,
	"rawlen":   biRawLen,
	"rawequal": biRawEqual,

	"setmetatable": biSetMetatable,
	"getmetatable": biGetMetatable,
	"print":        biPrint,

	"__ipairs_iter": biIPairsIter,

	"math.floor": biMathFloor,
	"math.ceil":  biMathCeil,
	"math.abs":   biMathAbs,
	"math.max":   biMathMax,
	"math.min":   biMathMin,
	"math.sqrt":  biMathSqrt,
	"math.fmod":  biMathFmod,
	"math.log":   biMathLog,
	"math.exp":   biMathExp,
	"math.pow":   biMathPow,
	"math.random": biMathRandom,

	"string.len":     biStringLen,
	"string.sub":     biStringSub,
	"string.rep":     biStringRep,
	"string.lower":   biStringLower,
	"string.upper":   biStringUpper,
	"string.reverse": biStringReverse,
	"string.byte":    biStringByte,
	"string.char":    biStringChar,
	"string.find":    biStringFind,
	"string.match":   biStringMatch,
	"string.gmatch":  biStringGmatch,
	"string.gsub":    biStringGsub,
	"string.format":  biStringFormat,

	"table.insert": biTableInsert,
	"table.remove": biTableRemove,
	"table.concat": biTableConcat,
	"table.sort":   biTableSort,
	"table.getn":   biTableGetN,
	"table.maxn":   biTableGetN,

	"cjson.encode": biCjsonEncode,
	"cjson.decode": biCjsonDecode,

	"redis.call":          biRedisCall,
	"redis.pcall":         biRedisPCall,
	"redis.error_reply":   biRedisErrorReply,
	"redis.status_reply":  biRedisStatusReply,
	"redis.sha1hex":       biRedisSha1Hex,
	"redis.log":           biRedisLog,
}

// pcall is registered here rather than in the literal above: biPCall
// reaches hostBuiltins through callValue and callHost, so listing it in
// the literal would be an initialization cycle.
func init() {
	hostBuiltins["pcall"] = biPCall
}

// InstallStdlib populates globals with every top-level built-in name plus
// the math/string/table/cjson/redis library tables (§4.4/§6), the way the
// entry point wires a fresh Interpreter before running a script.
func (ip *Interpreter) InstallStdlib() {
	for _, name := range []string{
		"tonumber", "tostring", "type", "error", "assert", "pcall",
		"pairs", "ipairs", "next", "unpack", "select",
		"rawget", "rawset", "rawlen", "rawequal",
		"setmetatable", "getmetatable", "print",
	} {
		ip.globals[name] = value.HostFunction(name)
	}

	ip.globals["math"] = value.TableVal(libTable(map[string]value.Value{
		"floor":  value.HostFunction("math.floor"),
		"ceil":   value.HostFunction("math.ceil"),
		"abs":    value.HostFunction("math.abs"),
		"max":    value.HostFunction("math.max"),
		"min":    value.HostFunction("math.min"),
		"sqrt":   value.HostFunction("math.sqrt"),
		"fmod":   value.HostFunction("math.fmod"),
		"log":    value.HostFunction("math.log"),
		"exp":    value.HostFunction("math.exp"),
		"pow":    value.HostFunction("math.pow"),
		"random": value.HostFunction("math.random"),
		"pi":     value.Number(3.14159265358979323846),
		"huge":   value.Number(mathHuge),
	}))

	ip.globals["string"] = value.TableVal(libTable(map[string]value.Value{
		"len":     value.HostFunction("string.len"),
		"sub":     value.HostFunction("string.sub"),
		"rep":     value.HostFunction("string.rep"),
		"lower":   value.HostFunction("string.lower"),
		"upper":   value.HostFunction("string.upper"),
		"reverse": value.HostFunction("string.reverse"),
		"byte":    value.HostFunction("string.byte"),
		"char":    value.HostFunction("string.char"),
		"find":    value.HostFunction("string.find"),
		"match":   value.HostFunction("string.match"),
		"gmatch":  value.HostFunction("string.gmatch"),
		"gsub":    value.HostFunction("string.gsub"),
		"format":  value.HostFunction("string.format"),
	}))

	ip.globals["table"] = value.TableVal(libTable(map[string]value.Value{
		"insert": value.HostFunction("table.insert"),
		"remove": value.HostFunction("table.remove"),
		"concat": value.HostFunction("table.concat"),
		"sort":   value.HostFunction("table.sort"),
		"getn":   value.HostFunction("table.getn"),
		"maxn":   value.HostFunction("table.maxn"),
	}))

	ip.globals["cjson"] = value.TableVal(libTable(map[string]value.Value{
		"encode": value.HostFunction("cjson.encode"),
		"decode": value.HostFunction("cjson.decode"),
	}))

	ip.globals["redis"] = value.TableVal(libTable(map[string]value.Value{
		"call":         value.HostFunction("redis.call"),
		"pcall":        value.HostFunction("redis.pcall"),
		"error_reply":  value.HostFunction("redis.error_reply"),
		"status_reply": value.HostFunction("redis.status_reply"),
		"sha1hex":      value.HostFunction("redis.sha1hex"),
		"log":          value.HostFunction("redis.log"),
		"LOG_DEBUG":    value.Number(0),
		"LOG_VERBOSE":  value.Number(1),
		"LOG_NOTICE":   value.Number(2),
		"LOG_WARNING":  value.Number(3),
	}))
}

var mathHuge = math.Inf(1) // math.huge is +Inf

func libTable(fields map[string]value.Value) *value.Table {
	t := value.NewTable()
	for k, v := range fields {
		t.Set(value.String(k), v)
	}
	return t
}
