package util

type Pair[A, B any] struct {
	Fst A
	Snd B
}

func NewPair[A, B any](fst A, snd B) Pair[A, B] {
	return Pair[A, B]{
		Fst: fst,
		Snd: snd,
	}
}

// Flip swaps both components, which is handy for caching symmetric relations
// under a single key orientation.
func (p Pair[A, B]) Flip() Pair[B, A] {
	return Pair[B, A]{
		Fst: p.Snd,
		Snd: p.Fst,
	}
}
