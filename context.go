package vouch

import (
	"reflect"
	"strings"
)

// ServiceLookup resolves a service instance by type, or nil when the type is
// unknown. It is supplied once at context creation; the context performs only
// single lookups, never registration or enumeration.
type ServiceLookup func(t reflect.Type) any

// contextStore is the mutable state shared by a whole context tree. It is
// owned by the root and handed down by reference; its lifetime is the root's.
type contextStore struct {
	data  map[string]any
	rules []string
}

// Context is one node of a hierarchical validation context. The root object,
// service lookup, custom data and rule-execution log are shared by reference
// across the whole tree; the property path is the only per-node value.
//
// The shared store is mutated without internal synchronization. Callers that
// fan out nested validations concurrently over one tree must serialize their
// own access.
type Context struct {
	root     any
	subject  any
	services ServiceLookup
	store    *contextStore
	parent   *Context
	path     string
}

// NewContext builds a root context with an empty property path. Both arguments
// may be nil; accessors then degrade to zero values.
func NewContext(root any, services ServiceLookup) *Context {
	return &Context{
		root:     root,
		subject:  root,
		services: services,
		store:    &contextStore{data: make(map[string]any)},
	}
}

// Child derives a context for a nested validation. The root object is carried
// through unchanged so any rule in the tree can reach the top-level object;
// subject becomes the nested object; the path is the parent path joined with
// name (see JoinPath). Services, custom data and the rule log stay shared.
func (c *Context) Child(subject any, name string) *Context {
	return &Context{
		root:     c.root,
		subject:  subject,
		services: c.services,
		store:    c.store,
		parent:   c,
		path:     JoinPath(c.path, name),
	}
}

// JoinPath combines a parent property path with a child name: plain names
// attach with a dot, index-style names ("[2].Name") concatenate directly, and
// an empty name keeps the parent path. The root path is the empty string, so
// first-level names stand alone.
func JoinPath(parent, name string) string {
	switch {
	case name == "":
		return parent
	case parent == "":
		return name
	case strings.HasPrefix(name, "["):
		return parent + name
	default:
		return parent + "." + name
	}
}

// Path returns this node's property path ("" at the root).
func (c *Context) Path() string { return c.path }

// Parent returns the parent node, or nil at the root. The reference exists for
// path reconstruction only; children never own their parents.
func (c *Context) Parent() *Context { return c.parent }

// RootObject returns the top-level object under validation, or nil.
func (c *Context) RootObject() any { return c.root }

// Subject returns the object this node validates: the nested object for child
// contexts, the root object at the root.
func (c *Context) Subject() any { return c.subject }

// SetData stores a custom value visible to the whole tree.
func (c *Context) SetData(key string, v any) {
	c.store.data[key] = v
}

// RecordRule appends name to the tree-wide rule-execution log.
func (c *Context) RecordRule(name string) {
	c.store.rules = append(c.store.rules, name)
}

// ExecutedRules returns a copy of the tree-wide rule-execution log in append
// order.
func (c *Context) ExecutedRules() []string {
	out := make([]string, len(c.store.rules))
	copy(out, c.store.rules)
	return out
}

// RootAs returns the root object typed as T. Absence or a type mismatch
// yields the zero value, never a failure.
func RootAs[T any](c *Context) T {
	var zero T
	if c == nil || c.root == nil {
		return zero
	}
	if v, ok := c.root.(T); ok {
		return v
	}
	return zero
}

// SubjectAs returns this node's subject typed as T, degrading to the zero
// value like RootAs.
func SubjectAs[T any](c *Context) T {
	var zero T
	if c == nil || c.subject == nil {
		return zero
	}
	if v, ok := c.subject.(T); ok {
		return v
	}
	return zero
}

// ServiceAs resolves a service of type T through the context's lookup. A
// missing lookup, unknown type or mismatched instance yields the zero value.
func ServiceAs[T any](c *Context) T {
	var zero T
	if c == nil || c.services == nil {
		return zero
	}
	v := c.services(reflect.TypeFor[T]())
	if v == nil {
		return zero
	}
	if tv, ok := v.(T); ok {
		return tv
	}
	return zero
}

// DataAs returns the custom-data entry under key typed as T, or the zero
// value when the key is absent or holds a different type.
func DataAs[T any](c *Context, key string) T {
	var zero T
	if c == nil {
		return zero
	}
	v, ok := c.store.data[key]
	if !ok {
		return zero
	}
	if tv, ok := v.(T); ok {
		return tv
	}
	return zero
}
