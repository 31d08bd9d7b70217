package core

// Token is a collectible numeric value object. Values are always a power
// of two >= 1. A token is owned by exactly one of: a cell, or the player
// inventory — never both.
type Token struct {
	Value int
}

// Clone returns an independent copy of the token.
// Receivers on *Token tolerate nil, which stands for "absent".
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Equal reports whether two possibly-absent tokens hold the same value.
func (t *Token) Equal(other *Token) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Value == other.Value
}

// CanMerge reports whether this token can merge with another.
// Only equal values merge.
func (t *Token) CanMerge(other *Token) bool {
	return t != nil && other != nil && t.Value == other.Value
}

// Merged returns the token produced by merging two equal-valued tokens.
// Callers must check CanMerge first.
func (t *Token) Merged() Token {
	return Token{Value: t.Value * 2}
}

// IsPowerOfTwo reports whether v is a valid token value.
func IsPowerOfTwo(v int) bool {
	return v >= 1 && v&(v-1) == 0
}
