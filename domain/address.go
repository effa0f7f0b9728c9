package domain

import "strings"

// Transport addresses follow the node@domain/resource shape. The node
// part doubles as a display name, the bare address identifies a room.

// Node returns the part of an address before '@'.
func Node(addr string) string {
	if i := strings.IndexByte(addr, '@'); i >= 0 {
		return addr[:i]
	}
	return addr
}

// Bare strips the resource part of an address.
func Bare(addr string) string {
	if i := strings.IndexByte(addr, '/'); i >= 0 {
		return addr[:i]
	}
	return addr
}
