// Package iterator demonstrates iteration over a collection without exposing
// its representation, using range-over-func sequences.
package iterator

import "iter"

var numbersInGerman = []string{"eins", "zwei", "drei", "vier", "fünf"}

// CountTo yields (position, German word) pairs from 1 up to count.
// Positions beyond the known words are not yielded.
func CountTo(count int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < count && i < len(numbersInGerman); i++ {
			if !yield(i+1, numbersInGerman[i]) {
				return
			}
		}
	}
}

// Sequence is a stateful iterator over 0..capacity-1.
type Sequence struct {
	next     int
	capacity int
}

// NewSequence returns a sequence of capacity values. A negative capacity is empty.
func NewSequence(capacity int) *Sequence {
	return &Sequence{capacity: max(capacity, 0)}
}

// Next returns the next value, or ok=false once the sequence is exhausted.
func (s *Sequence) Next() (value int, ok bool) {
	if s.next >= s.capacity {
		return 0, false
	}
	value = s.next
	s.next++
	return value, true
}

// All yields the values not yet consumed, advancing the sequence as it goes.
func (s *Sequence) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
