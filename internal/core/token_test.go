package core

import "testing"

func TestTokenClone(t *testing.T) {
	tok := &Token{Value: 4}
	c := tok.Clone()
	if c == tok {
		t.Fatal("Clone returned the same pointer")
	}
	if c.Value != 4 {
		t.Errorf("Clone value = %d, want 4", c.Value)
	}

	c.Value = 8
	if tok.Value != 4 {
		t.Error("mutating the clone changed the original")
	}

	var absent *Token
	if absent.Clone() != nil {
		t.Error("Clone of absent token should be nil")
	}
}

func TestTokenEqual(t *testing.T) {
	var absent *Token
	if !absent.Equal(nil) {
		t.Error("absent should equal absent")
	}
	if absent.Equal(&Token{Value: 1}) {
		t.Error("absent should not equal present")
	}
	if !(&Token{Value: 2}).Equal(&Token{Value: 2}) {
		t.Error("equal values should be equal")
	}
	if (&Token{Value: 2}).Equal(&Token{Value: 4}) {
		t.Error("different values should not be equal")
	}
}

func TestTokenMerge(t *testing.T) {
	a := &Token{Value: 4}
	b := &Token{Value: 4}
	if !a.CanMerge(b) {
		t.Fatal("equal tokens should merge")
	}
	if m := a.Merged(); m.Value != 8 {
		t.Errorf("Merged value = %d, want 8", m.Value)
	}

	if a.CanMerge(&Token{Value: 2}) {
		t.Error("unequal tokens should not merge")
	}
	if a.CanMerge(nil) {
		t.Error("cannot merge with absent token")
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []int{1, 2, 4, 8, 1024} {
		if !IsPowerOfTwo(v) {
			t.Errorf("IsPowerOfTwo(%d) = false", v)
		}
	}
	for _, v := range []int{0, -2, 3, 6, 12} {
		if IsPowerOfTwo(v) {
			t.Errorf("IsPowerOfTwo(%d) = true", v)
		}
	}
}
