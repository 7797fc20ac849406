package bridge

import "github.com/redis-eval/redis-eval/internal/value"

// FrameToValue converts a host wire frame into a script Value, the
// conversion applied to the return of redis.call/redis.pcall (§4.5
// "Host frame → value").
func FrameToValue(f Frame) value.Value {
	switch f.Kind {
	case KindSimpleString:
		t := value.NewTable()
		t.Set(value.String("ok"), value.String(f.Str))
		return value.TableVal(t)
	case KindError:
		t := value.NewTable()
		t.Set(value.String("err"), value.String(f.Str))
		return value.TableVal(t)
	case KindInteger:
		return value.Number(float64(f.Int))
	case KindBulkString:
		if f.Bulk == nil {
			return value.Bool(false)
		}
		return value.String(string(f.Bulk))
	case KindArray:
		if f.IsNilArray {
			return value.Bool(false)
		}
		t := value.NewTable()
		for _, item := range f.Items {
			t.Append(FrameToValue(item))
		}
		return value.TableVal(t)
	default:
		return value.Nil
	}
}

// ValueToFrame converts a script's return value into the wire frame sent
// back to the host, per the "script return convention" of §4.5 ("Value →
// host frame").
func ValueToFrame(v value.Value) Frame {
	switch v.Kind {
	case value.KindNil:
		return NilBulkString()
	case value.KindBool:
		if v.Bool {
			return Integer(1)
		}
		return NilBulkString()
	case value.KindNumber:
		return Integer(int64(v.Num))
	case value.KindString:
		return BulkString([]byte(v.Str))
	case value.KindTable:
		if ok, s := stringField(v.Table, "ok"); ok {
			return SimpleString(s)
		}
		if ok, s := stringField(v.Table, "err"); ok {
			return ErrorFrame(s)
		}
		items := make([]Frame, v.Table.Len())
		for i := 0; i < v.Table.Len(); i++ {
			items[i] = ValueToFrame(v.Table.Get(value.Number(float64(i + 1))))
		}
		return Array(items)
	case value.KindFunction, value.KindHostFunction:
		return NilBulkString()
	default:
		return NilBulkString()
	}
}

// stringField reads a byte-string field from t by key, reporting whether
// it is present and holds a string (§4.5's {ok=...}/{err=...} check).
func stringField(t *value.Table, key string) (bool, string) {
	v := t.Get(value.String(key))
	if v.Kind != value.KindString {
		return false, ""
	}
	return true, v.Str
}
