package s3sig

import "sort"

// Params is the mutable query- or header-parameter map carried by every
// Action (spec §3: "two freely-mutable maps: query ... and headers").
// S3's action set never needs a repeated key or a multi-valued header, so
// a plain string-to-string map is enough. As a Go map it keeps no
// insertion order; canonicalization always sorts by key, and Sorted gives
// the same order to any other caller that needs one.
type Params map[string]string

// Set adds or overwrites key.
func (p Params) Set(key, value string) {
	p[key] = value
}

// Del removes key, if present.
func (p Params) Del(key string) {
	delete(p, key)
}

// Get returns the value for key and whether it was present.
func (p Params) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Sorted returns p's keys in lexicographic order, the order canonical
// query strings and canonical headers are always built in.
func (p Params) Sorted() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// clone returns a shallow copy, used internally so signing never mutates
// the caller's map with the X-Amz-* parameters it adds.
func (p Params) clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}
