package extract

// orderedSet deduplicates strings while preserving first-appearance order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) Add(value string) {
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.items = append(s.items, value)
}

func (s *orderedSet) Len() int {
	return len(s.items)
}

func (s *orderedSet) Items() []string {
	return s.items
}
