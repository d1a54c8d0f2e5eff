// Package jsonpath renders locations inside a JSON document in the
// dot/bracket notation used by validation and decoding issues
// ("address.city", "items[2]", "[0].name").
package jsonpath

import "strconv"

// Root is the rendering of the empty path.
const Root = "$"

// Field appends an object key to base.
func Field(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

// Index appends an array index to base. A root-level index renders without a
// leading dot or "$", e.g. "[0]".
func Index(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

// Render returns p, or Root when p is empty.
func Render(p string) string {
	if p == "" {
		return Root
	}
	return p
}
