// SPDX-License-Identifier: MPL-2.0

package jvm

type (
	// Property is a single system property key/value pair.
	Property struct {
		Key   string
		Value string
	}

	// Properties is an insertion-ordered collection of system
	// properties. The order properties are first set in is the order
	// their -D flags appear on the generated command line, which keeps
	// generated commands reproducible. Setting an existing key updates
	// its value in place without changing its position.
	Properties struct {
		order  []string
		values map[string]string
	}
)

// NewProperties creates an empty property collection.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Set stores the value for key. A new key is appended to the iteration
// order; an existing key keeps its position.
func (p *Properties) Set(key, value string) {
	if _, exists := p.values[key]; !exists {
		p.order = append(p.order, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it is present.
func (p *Properties) Get(key string) (string, bool) {
	value, ok := p.values[key]
	return value, ok
}

// Delete removes key from the collection. Deleting an absent key is a
// no-op.
func (p *Properties) Delete(key string) {
	if _, exists := p.values[key]; !exists {
		return
	}
	delete(p.values, key)
	for i, k := range p.order {
		if k == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.order)
}

// Pairs returns the properties as a slice in insertion order. The
// returned slice is a copy; mutating it does not affect the collection.
func (p *Properties) Pairs() []Property {
	pairs := make([]Property, 0, len(p.order))
	for _, key := range p.order {
		pairs = append(pairs, Property{Key: key, Value: p.values[key]})
	}
	return pairs
}
