package kotlin

import "github.com/leapstack-labs/swiftkt/pkg/core"

// Context is the read-only chain of nodes enclosing the node being
// translated. A nil *Context is the file root.
//
// Rules never walk parent pointers on the tree; everything a rule may
// depend on about its surroundings is reachable from here.
type Context struct {
	node     core.Node
	parent   *Context
	failures *failureSink
}

// failureSink collects the invariant violations recovered below one
// top-level item.
type failureSink struct {
	errs []error
}

// Enter returns a child context with n as the innermost enclosing node.
func (c *Context) Enter(n core.Node) *Context {
	child := &Context{node: n, parent: c}
	if c != nil {
		child.failures = c.failures
	}
	return child
}

// collecting returns a copy of c that records recovered failures in f.
func (c *Context) collecting(f *failureSink) *Context {
	if c == nil {
		return &Context{failures: f}
	}
	return &Context{node: c.node, parent: c.parent, failures: f}
}

// report records err, returning false when nothing collects failures.
func (c *Context) report(err error) bool {
	if c == nil || c.failures == nil {
		return false
	}
	c.failures.errs = append(c.failures.errs, err)
	return true
}

// Node returns the innermost enclosing node, or nil at the root.
func (c *Context) Node() core.Node {
	if c == nil {
		return nil
	}
	return c.node
}

// Outer returns the context one level up.
func (c *Context) Outer() *Context {
	if c == nil {
		return nil
	}
	return c.parent
}

// Depth returns the number of enclosing nodes.
func (c *Context) Depth() int {
	n := 0
	for ; c != nil; c = c.parent {
		n++
	}
	return n
}

// Find returns the context whose node is the nearest enclosing node
// matching pred, stopping early when stop matches. It returns nil when
// nothing matches.
func (c *Context) Find(pred, stop func(core.Node) bool) *Context {
	for ; c != nil; c = c.parent {
		if pred(c.node) {
			return c
		}
		if stop != nil && stop(c.node) {
			return nil
		}
	}
	return nil
}

// InProtocol reports whether the innermost enclosing node is a protocol.
func (c *Context) InProtocol() bool {
	_, ok := c.Node().(*core.ProtocolDecl)
	return ok
}

// isFunctionBoundary reports whether n starts a new return scope.
func isFunctionBoundary(n core.Node) bool {
	switch n.(type) {
	case *core.FunctionDecl, *core.InitializerDecl, *core.DeinitializerDecl,
		*core.VariableDecl, *core.ClosureExpr:
		return true
	}
	return false
}
