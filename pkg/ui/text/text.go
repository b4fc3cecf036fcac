// Package text holds small helpers for turning values into prose.
package text

import "strings"

// Join renders items as "a, b, c & d". A single item is returned as is and
// an empty list renders as "".
func Join[T ~string](items []T) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return string(items[0])
	}

	head := make([]string, len(items)-1)
	for i, item := range items[:len(items)-1] {
		head[i] = string(item)
	}
	return strings.Join(head, ", ") + " & " + string(items[len(items)-1])
}

// JoinStringers renders anything with a String method through Join
func JoinStringers[T interface{ String() string }](items []T) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return Join(out)
}
