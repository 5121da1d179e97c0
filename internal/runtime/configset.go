package runtime

import "github.com/aretw0/magazine/pkg/domain"

// ConfigurationSet holds configurations unique under (state, word, stack).
// Iteration follows insertion order. When a duplicate is added, the first one is kept
// together with its history.
type ConfigurationSet struct {
	index map[string]struct{}
	items []*domain.Configuration
}

// NewConfigurationSet creates an empty set.
func NewConfigurationSet(configs ...*domain.Configuration) *ConfigurationSet {
	s := &ConfigurationSet{index: make(map[string]struct{}, len(configs))}
	for _, c := range configs {
		s.Add(c)
	}
	return s
}

// Add inserts c unless an equal configuration is present. It reports whether c was inserted.
func (s *ConfigurationSet) Add(c *domain.Configuration) bool {
	key := c.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.items = append(s.items, c)
	return true
}

// Has reports whether a configuration equal to c is present.
func (s *ConfigurationSet) Has(c *domain.Configuration) bool {
	_, ok := s.index[c.Key()]
	return ok
}

// Len returns the number of distinct configurations.
func (s *ConfigurationSet) Len() int {
	return len(s.items)
}

// Items returns the members in insertion order. The slice must not be modified.
func (s *ConfigurationSet) Items() []*domain.Configuration {
	return s.items
}

// Snapshots returns the (state, word, stack) triples of all members.
func (s *ConfigurationSet) Snapshots() []domain.Snapshot {
	out := make([]domain.Snapshot, len(s.items))
	for i, c := range s.items {
		out[i] = c.Snapshot()
	}
	return out
}
