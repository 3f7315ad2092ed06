// Package entity provides unique identifiers for points, paths, guides,
// and components.
//
// Each ID is issued from a monotonically increasing counter, so IDs are
// totally ordered by creation and never reused within a session. IDs are
// used as keys in selection sets and for matching click targets to path
// elements during hit testing; deleted points leave no dangling references.
//
// The counter is an explicit value threaded through constructors rather
// than a process-wide global, so tests can build isolated sessions with
// deterministic IDs.
package entity

// ID is a unique identifier for an entity (point, path, guide, component).
// The zero value means "no entity".
type ID uint64

// IsZero reports whether the ID is the "no entity" value.
func (id ID) IsZero() bool { return id == 0 }

// Counter issues monotonically increasing IDs. The zero value is ready to
// use; the first ID issued is 1.
//
// A Counter is not safe for concurrent use. The editing core is
// single-threaded, and every structure that needs IDs owns or borrows one
// counter explicitly.
type Counter struct {
	last uint64
}

// Next returns a fresh ID, greater than every ID issued before it.
func (c *Counter) Next() ID {
	c.last++
	return ID(c.last)
}
