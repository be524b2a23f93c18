// Package alloc provides the allocation primitives the containers are built on.
//
// A [Region] is one owned contiguous block of element slots with explicit
// acquire, resize and release steps. [New] and [Free] allocate and free
// individual objects such as list nodes. Every primitive reports into a
// [Tracker] owned by the container, so the container can prove that each
// acquisition is released exactly once.
//
// Requests whose byte size cannot be represented are contract violations and
// panic with [errors.ErrAllocTooLarge]. Running out of memory aborts the
// process; there is no degraded mode.
//
// Nothing in this package is safe for concurrent use.
package alloc
