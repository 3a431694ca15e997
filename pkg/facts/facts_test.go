package facts

import "testing"

func TestTextEmptyIsNull(t *testing.T) {
	if Text("").Valid() {
		t.Error("Text(\"\") should be null")
	}
	if !Text("x").Valid() {
		t.Error("Text(\"x\") should be valid")
	}
}

func TestIndexed(t *testing.T) {
	v := Indexed(3, "45%")
	if !v.Valid() || !v.Indexed || v.Index != 3 || v.Text != "45%" {
		t.Errorf("Indexed(3, 45%%) = %+v", v)
	}
	if Indexed(3, "").Valid() {
		t.Error("Indexed with empty text should be null")
	}
}

func TestSetCopiesInput(t *testing.T) {
	m := map[string]Value{"a": Text("1")}
	s := NewSet(m)
	m["a"] = Text("2")
	if got := s.Get("a").Text; got != "1" {
		t.Errorf("Get(a) = %q, want %q", got, "1")
	}
}

func TestSetMissingIsNull(t *testing.T) {
	s := NewSet(map[string]Value{"a": Null})
	if !s.Has("a") {
		t.Error("Has(a) = false, want true")
	}
	if s.Has("b") {
		t.Error("Has(b) = true, want false")
	}
	if s.Get("b").Valid() {
		t.Error("Get(b) should be null")
	}
}

func TestSetNamesSorted(t *testing.T) {
	s := NewSet(map[string]Value{"b": Null, "a": Null, "c": Null})
	names := s.Names()
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
