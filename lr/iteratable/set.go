package iteratable

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is an ordered set, backed by a red-black tree. The zero value is not
// usable; create sets with NewSet or NewStringSet.
type Set struct {
	cmp  utils.Comparator
	tree *treeset.Set
}

// NewSet creates a set ordered by a comparator, optionally pre-filled with values.
func NewSet(cmp utils.Comparator, values ...interface{}) *Set {
	return &Set{
		cmp:  cmp,
		tree: treeset.NewWith(cmp, values...),
	}
}

// NewStringSet creates a set of strings in lexical order.
func NewStringSet(values ...string) *Set {
	s := NewSet(utils.StringComparator)
	for _, v := range values {
		s.tree.Add(v)
	}
	return s
}

// Comparator returns the comparator ordering this set.
func (s *Set) Comparator() utils.Comparator {
	return s.cmp
}

// Add inserts values into s.
func (s *Set) Add(values ...interface{}) {
	s.tree.Add(values...)
}

// Remove deletes values from s.
func (s *Set) Remove(values ...interface{}) {
	s.tree.Remove(values...)
}

// Contains is a predicate: is v an element of s?
func (s *Set) Contains(v interface{}) bool {
	return s.tree.Contains(v)
}

// Size returns the number of elements.
func (s *Set) Size() int {
	return s.tree.Size()
}

// Empty is true for sets without elements.
func (s *Set) Empty() bool {
	return s.tree.Empty()
}

// Values returns the elements of s in order.
func (s *Set) Values() []interface{} {
	return s.tree.Values()
}

// Strings returns the elements of a set of strings in order.
// It will panic if s contains anything but strings.
func (s *Set) Strings() []string {
	vals := s.tree.Values()
	r := make([]string, len(vals))
	for i, v := range vals {
		r[i] = v.(string)
	}
	return r
}

// First returns the smallest element, or nil for an empty set.
func (s *Set) First() interface{} {
	it := s.tree.Iterator()
	if it.First() {
		return it.Value()
	}
	return nil
}

// Each calls f for every element, in order.
func (s *Set) Each(f func(interface{})) {
	it := s.tree.Iterator()
	for it.Next() {
		f(it.Value())
	}
}

// Union adds all elements of other to s and reports whether s has grown.
func (s *Set) Union(other *Set) bool {
	if other == nil {
		return false
	}
	n := s.tree.Size()
	s.tree.Add(other.tree.Values()...)
	return s.tree.Size() > n
}

// Difference returns a new set with all elements of s not contained in other.
func (s *Set) Difference(other *Set) *Set {
	d := NewSet(s.cmp)
	it := s.tree.Iterator()
	for it.Next() {
		if other == nil || !other.tree.Contains(it.Value()) {
			d.tree.Add(it.Value())
		}
	}
	return d
}

// Subset is a predicate: is every element of s contained in other?
func (s *Set) Subset(other *Set) bool {
	it := s.tree.Iterator()
	for it.Next() {
		if !other.tree.Contains(it.Value()) {
			return false
		}
	}
	return true
}

// Equals is true if s and other contain the same elements.
func (s *Set) Equals(other *Set) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	return s.Subset(other)
}

// Copy returns a shallow copy of s.
func (s *Set) Copy() *Set {
	return NewSet(s.cmp, s.tree.Values()...)
}

func (s *Set) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	s.Each(func(v interface{}) {
		if first {
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", v))
	})
	b.WriteString("}")
	return b.String()
}
