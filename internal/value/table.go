package value

// Table implements the dual array/hash-part structure from spec.md §3.
// The array part is the ordered sequence of values addressed by integer
// keys 1..len(Array); the hash part is an insertion-ordered sequence of
// (key, value) pairs, matching the spec's own description of it as "an
// ordered sequence of pairs" rather than an unordered map — this keeps
// `next`/`pairs` traversal order deterministic without extra bookkeeping.
// Tables are always held by pointer so that assignment and argument
// passing alias the same table (the fidelity upgrade documented in
// SPEC_FULL.md and DESIGN.md).
type Table struct {
	Array    []Value
	hashKeys []Value
	hashVals []Value
}

// NewTable returns an empty table.
func NewTable() *Table { return &Table{} }

// intIndex reports whether n is a positive integer key (equal to its own
// truncation) and returns it as an int.
func intIndex(n float64) (int, bool) {
	i := int64(n)
	if float64(i) != n || i <= 0 {
		return 0, false
	}
	return int(i), true
}

// Get reads t[key]. Reading beyond the array part, or a hash key with no
// entry, returns Nil.
func (t *Table) Get(key Value) Value {
	if key.Kind == KindNumber {
		if idx, ok := intIndex(key.Num); ok && idx >= 1 && idx <= len(t.Array) {
			return t.Array[idx-1]
		}
	}
	for i, k := range t.hashKeys {
		if RawEqual(k, key) {
			return t.hashVals[i]
		}
	}
	return Nil
}

// Set writes t[key] = val, following the array/hash placement invariants
// from spec.md §3(a). Per SPEC_FULL.md's Open-Question-1 resolution, a
// nil key is accepted into the hash part rather than raising.
func (t *Table) Set(key Value, val Value) {
	if key.Kind == KindNumber {
		if idx, ok := intIndex(key.Num); ok {
			switch {
			case idx >= 1 && idx <= len(t.Array):
				t.Array[idx-1] = val
				return
			case idx == len(t.Array)+1:
				if !val.IsNil() {
					t.Array = append(t.Array, val)
				}
				return
			}
		}
	}
	for i, k := range t.hashKeys {
		if RawEqual(k, key) {
			if val.IsNil() {
				t.hashKeys = append(t.hashKeys[:i], t.hashKeys[i+1:]...)
				t.hashVals = append(t.hashVals[:i], t.hashVals[i+1:]...)
				return
			}
			t.hashVals[i] = val
			return
		}
	}
	if val.IsNil() {
		return
	}
	t.hashKeys = append(t.hashKeys, key)
	t.hashVals = append(t.hashVals, val)
}

// Len is `#t`: the length of the array part only.
func (t *Table) Len() int { return len(t.Array) }

// Next implements the `next(t, k)` built-in's traversal order: array part
// first (by integer key), then the hash part in insertion order. hasKey
// false starts the traversal (k == nil case); the boolean result reports
// whether an entry was found.
func (t *Table) Next(key Value, hasKey bool) (Value, Value, bool) {
	if !hasKey {
		if len(t.Array) > 0 {
			return Number(1), t.Array[0], true
		}
		if len(t.hashKeys) > 0 {
			return t.hashKeys[0], t.hashVals[0], true
		}
		return Nil, Nil, false
	}
	if key.Kind == KindNumber {
		if idx, ok := intIndex(key.Num); ok && idx >= 1 && idx <= len(t.Array) {
			if idx < len(t.Array) {
				return Number(float64(idx + 1)), t.Array[idx], true
			}
			if len(t.hashKeys) > 0 {
				return t.hashKeys[0], t.hashVals[0], true
			}
			return Nil, Nil, false
		}
	}
	for i, k := range t.hashKeys {
		if RawEqual(k, key) {
			if i+1 < len(t.hashKeys) {
				return t.hashKeys[i+1], t.hashVals[i+1], true
			}
			return Nil, Nil, false
		}
	}
	return Nil, Nil, false
}

// Append adds v to the end of the array part (table.insert(t, v)).
func (t *Table) Append(v Value) { t.Array = append(t.Array, v) }

// InsertAt inserts v before 1-indexed pos, clamped to [1, len+1]
// (table.insert(t, pos, v)).
func (t *Table) InsertAt(pos int, v Value) {
	if pos < 1 {
		pos = 1
	}
	if pos > len(t.Array)+1 {
		pos = len(t.Array) + 1
	}
	t.Array = append(t.Array, Nil)
	copy(t.Array[pos:], t.Array[pos-1:len(t.Array)-1])
	t.Array[pos-1] = v
}

// RemoveAt removes and returns the element at 1-indexed pos (default the
// last element). Returns Nil if the array part is empty or pos is out of
// range (table.remove(t[, pos])).
func (t *Table) RemoveAt(pos int, hasPos bool) Value {
	if len(t.Array) == 0 {
		return Nil
	}
	if !hasPos {
		pos = len(t.Array)
	}
	if pos < 1 || pos > len(t.Array) {
		return Nil
	}
	v := t.Array[pos-1]
	t.Array = append(t.Array[:pos-1], t.Array[pos:]...)
	return v
}

// HashLen returns the number of entries in the hash part (used by cjson
// to decide array-vs-object encoding).
func (t *Table) HashLen() int { return len(t.hashKeys) }

// HashPairs returns the hash part's insertion-ordered (key, value) pairs.
func (t *Table) HashPairs() ([]Value, []Value) { return t.hashKeys, t.hashVals }
