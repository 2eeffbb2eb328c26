package indexed

// Set is an insertion-ordered set.
type Set[T comparable] struct {
	members []T
	index   map[T]int
}

func NewSet[T comparable](members ...T) *Set[T] {
	s := &Set[T]{
		index: make(map[T]int),
	}
	for _, member := range members {
		s.Add(member)
	}
	return s
}

func (s *Set[T]) Len() int {
	return len(s.members)
}

func (s *Set[T]) Contains(member T) bool {
	_, ok := s.index[member]
	return ok
}

func (s *Set[T]) At(i int) T {
	return s.members[i]
}

// Add inserts the member and reports whether it was absent.
func (s *Set[T]) Add(member T) bool {
	if _, ok := s.index[member]; ok {
		return false
	}
	s.index[member] = len(s.members)
	s.members = append(s.members, member)
	return true
}

// Remove deletes the member and reports whether it was present.
func (s *Set[T]) Remove(member T) bool {
	i, ok := s.index[member]
	if !ok {
		return false
	}

	last := len(s.members) - 1
	copy(s.members[i:], s.members[i+1:])

	var zero T
	s.members[last] = zero
	s.members = s.members[:last]

	delete(s.index, member)
	for j := i; j < len(s.members); j++ {
		s.index[s.members[j]] = j
	}

	return true
}

func (s *Set[T]) Each(fn func(i int, member T)) {
	for i, member := range s.members {
		fn(i, member)
	}
}

func (s *Set[T]) Any(pred func(i int, member T) bool) bool {
	for i, member := range s.members {
		if pred(i, member) {
			return true
		}
	}
	return false
}

func (s *Set[T]) All(pred func(i int, member T) bool) bool {
	for i, member := range s.members {
		if !pred(i, member) {
			return false
		}
	}
	return true
}

func (s *Set[T]) Members() []T {
	members := make([]T, len(s.members))
	copy(members, s.members)
	return members
}

func (s *Set[T]) Copy() *Set[T] {
	c := &Set[T]{
		members: make([]T, len(s.members)),
		index:   make(map[T]int, len(s.index)),
	}
	copy(c.members, s.members)
	for member, i := range s.index {
		c.index[member] = i
	}
	return c
}
