package automaton

import "fmt"

// Allocator hands out state identifiers "q0", "q1", ... in increasing order.
// Identifiers are never reused. The zero value starts at "q0".
//
// An Allocator is owned by a single build and is not safe for concurrent use.
type Allocator struct {
	next int
}

// Next returns the next unused state identifier.
func (a *Allocator) Next() string {
	id := fmt.Sprintf("q%d", a.next)
	a.next++
	return id
}

// Count returns the number of identifiers handed out so far.
func (a *Allocator) Count() int {
	return a.next
}
