package bsym

// ConfigurationSet holds distinct configurations, bucketed by hash.
// Configurations with colliding hashes are told apart by Matches.
type ConfigurationSet struct {
	buckets map[uint64][]int
	members []*Configuration
}

// NewConfigurationSet creates an empty set.
func NewConfigurationSet() *ConfigurationSet {
	return &ConfigurationSet{buckets: make(map[uint64][]int)}
}

// index returns the position of a configuration matching c in insertion order, or -1.
func (s *ConfigurationSet) index(c *Configuration) int {
	for _, i := range s.buckets[c.Hash()] {
		if s.members[i].Matches(c) {
			return i
		}
	}
	return -1
}

// Add inserts c unless a matching configuration is already present. It reports whether c was inserted.
func (s *ConfigurationSet) Add(c *Configuration) bool {
	if s.index(c) >= 0 {
		return false
	}
	h := c.Hash()
	s.buckets[h] = append(s.buckets[h], len(s.members))
	s.members = append(s.members, c)
	return true
}

// Get returns the stored configuration matching c, if any.
func (s *ConfigurationSet) Get(c *Configuration) (*Configuration, bool) {
	i := s.index(c)
	if i < 0 {
		return nil, false
	}
	return s.members[i], true
}

// Contains reports whether a configuration matching c is present.
func (s *ConfigurationSet) Contains(c *Configuration) bool {
	return s.index(c) >= 0
}

// Len returns the number of configurations in the set.
func (s *ConfigurationSet) Len() int {
	return len(s.members)
}

// Configurations returns the members in insertion order.
func (s *ConfigurationSet) Configurations() []*Configuration {
	out := make([]*Configuration, len(s.members))
	copy(out, s.members)
	return out
}
