package vouch

import (
	"fmt"
	"strings"

	"github.com/vouch-dev/vouch/internal/ordmap"
)

// ErrorMap is an ordered mapping from property path to the ordered list of
// failure messages recorded for that property. Keys keep first-insertion
// order, messages keep append order, and a key never holds an empty list.
//
// Mutation happens only through Add, RemoveLast and ReplaceLast; everything
// else is a read. ErrorMap is not safe for concurrent mutation.
type ErrorMap struct {
	m *ordmap.Map
}

// NewErrorMap returns an empty ErrorMap.
func NewErrorMap() *ErrorMap {
	return &ErrorMap{m: ordmap.New()}
}

// Add appends messages under path. Empty messages are dropped so the no-empty
// invariant holds; adding nothing leaves the map untouched.
func (e *ErrorMap) Add(path string, messages ...string) {
	kept := messages[:0:0]
	for _, msg := range messages {
		if msg != "" {
			kept = append(kept, msg)
		}
	}
	e.m.Append(path, kept...)
}

// RemoveLast retracts the most recently added message under path, removing the
// path entirely when no messages remain. It reports whether a message existed.
func (e *ErrorMap) RemoveLast(path string) bool {
	_, ok := e.m.PopLast(path)
	return ok
}

// ReplaceLast overwrites the most recently added message under path. It is a
// no-op (returning false) when the path has no messages.
func (e *ErrorMap) ReplaceLast(path, message string) bool {
	if message == "" {
		return false
	}
	return e.m.SetLast(path, message)
}

// Get returns a copy of the messages recorded under path, or nil.
func (e *ErrorMap) Get(path string) []string { return e.m.Get(path) }

// Has reports whether any message is recorded under path.
func (e *ErrorMap) Has(path string) bool { return e.m.Has(path) }

// Keys returns the property paths in insertion order.
func (e *ErrorMap) Keys() []string { return e.m.Keys() }

// Len returns the number of property paths holding at least one message.
func (e *ErrorMap) Len() int { return e.m.Len() }

// Total returns the number of messages across all paths.
func (e *ErrorMap) Total() int { return e.m.Total() }

// Empty reports whether no message has been recorded.
func (e *ErrorMap) Empty() bool { return e.m.Len() == 0 }

// Range calls fn for each path in insertion order with its message list. The
// list must not be mutated by fn. Iteration stops when fn returns false.
func (e *ErrorMap) Range(fn func(path string, messages []string) bool) {
	e.m.Range(fn)
}

// Clone returns a deep copy.
func (e *ErrorMap) Clone() *ErrorMap {
	return &ErrorMap{m: e.m.Clone()}
}

// String summarizes the first few entries, e.g. for log lines and test output.
func (e *ErrorMap) String() string {
	if e.Empty() {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	shown, total := 0, 0
	e.Range(func(path string, messages []string) bool {
		total += len(messages)
		if shown >= maxShown {
			return true
		}
		if shown > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s: %s", path, messages[0])
		shown++
		return true
	})
	if total > shown {
		fmt.Fprintf(b, "; ... (total %d)", total)
	}
	return b.String()
}
