package interp

import "testing"

func TestTableInsertAppend(t *testing.T) {
	got := runOne(t, `
local t = {1, 2}
table.insert(t, 3)
return #t .. ":" .. t[3]`)
	if got.Str != "3:3" {
		t.Errorf("got %q, want %q", got.Str, "3:3")
	}
}

func TestTableInsertAtPosition(t *testing.T) {
	got := runOne(t, `
local t = {1, 2, 3}
table.insert(t, 2, 99)
return t[1] .. "," .. t[2] .. "," .. t[3] .. "," .. t[4]`)
	if got.Str != "1,99,2,3" {
		t.Errorf("got %q", got.Str)
	}
}

func TestTableRemoveLast(t *testing.T) {
	got := runOne(t, `
local t = {1, 2, 3}
local v = table.remove(t)
return v .. ":" .. #t`)
	if got.Str != "3:2" {
		t.Errorf("got %q", got.Str)
	}
}

func TestTableRemoveAtPosition(t *testing.T) {
	got := runOne(t, `
local t = {1, 2, 3}
local v = table.remove(t, 1)
return v .. ":" .. t[1] .. "," .. t[2]`)
	if got.Str != "1:2,3" {
		t.Errorf("got %q", got.Str)
	}
}

func TestTableConcatDefault(t *testing.T) {
	got := runOne(t, `return table.concat({1,2,3})`)
	if got.Str != "123" {
		t.Errorf("got %q, want %q", got.Str, "123")
	}
}

func TestTableConcatSeparatorAndRange(t *testing.T) {
	got := runOne(t, `return table.concat({"a","b","c","d"}, "-", 2, 3)`)
	if got.Str != "b-c" {
		t.Errorf("got %q, want %q", got.Str, "b-c")
	}
}

func TestTableSortDefault(t *testing.T) {
	got := runOne(t, `
local t = {3, 1, 2}
table.sort(t)
return t[1] .. t[2] .. t[3]`)
	if got.Str != "123" {
		t.Errorf("got %q, want %q", got.Str, "123")
	}
}

func TestTableSortIgnoresComparator(t *testing.T) {
	// table.sort has no custom comparator support (§4.4's documented
	// limitation): a second argument is accepted but ignored, and the
	// array part always sorts by the default numbers/strings ordering.
	got := runOne(t, `
local t = {3, 1, 2}
table.sort(t, function(a, b) return a > b end)
return t[1] .. t[2] .. t[3]`)
	if got.Str != "123" {
		t.Errorf("got %q, want %q", got.Str, "123")
	}
}

func TestTableGetN(t *testing.T) {
	got := runOne(t, `return table.getn({1,2,3,4})`)
	if got.Num != 4 {
		t.Errorf("got %v, want 4", got.Num)
	}
}
