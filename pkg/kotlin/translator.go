// Package kotlin translates a Swift syntax tree into a Kotlin token stream.
//
// Every node kind has one rule. Rules are pure functions of the node and
// its enclosing Context and build their output with the combinators of
// package token. Edits such as hoisting a super call or moving static
// members into a companion object are done by constructing the complete
// child sequence first and splicing it afterwards.
//
// Constructs without a rule degrade to a FIXME comment followed by a
// passthrough rendering; translation of a file never aborts because of
// them. Broken internal assumptions raise an *InvariantError, which fails
// only the innermost enclosing member, or the top-level declaration when
// no member encloses it.
package kotlin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/parser"
	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// DefaultToolName is the tag written into FIXME comments.
const DefaultToolName = "swiftkt"

// FragmentParser parses the source text of an interpolated segment.
type FragmentParser interface {
	ParseExpr(src string) (core.Expr, error)
}

// Config configures a Translator.
type Config struct {
	// ToolName tags FIXME comments (default "swiftkt").
	ToolName string
	// Workers bounds parallel translation of top-level declarations
	// (default GOMAXPROCS).
	Workers int
	// Renames are layered over the default rename table.
	Renames map[string]string
	// Policy overrides the default heuristics.
	Policy *Policy
	// Fragments parses interpolation segments (default parser.Fragments).
	Fragments FragmentParser
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Translator converts Swift syntax trees into Kotlin tokens.
// It holds only read-only configuration and is safe for concurrent use.
type Translator struct {
	tool      string
	workers   int
	renames   RenameTable
	policy    *Policy
	fragments FragmentParser
	logger    *slog.Logger
}

// New creates a Translator.
func New(cfg Config) (*Translator, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	policy := cfg.Policy
	if policy == nil {
		policy = DefaultPolicy()
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	tool := cfg.ToolName
	if tool == "" {
		tool = DefaultToolName
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	fragments := cfg.Fragments
	if fragments == nil {
		fragments = parser.Fragments{}
	}

	return &Translator{
		tool:      tool,
		workers:   workers,
		renames:   DefaultRenames().Merge(cfg.Renames),
		policy:    policy,
		fragments: fragments,
		logger:    logger,
	}, nil
}

// Renames returns the effective rename table.
func (t *Translator) Renames() RenameTable {
	return t.renames.Merge(nil)
}

// Translate translates the top-level statements of f in source order.
//
// Top-level items are translated concurrently. A member that violates a
// translator invariant is replaced by a FIXME comment while its siblings
// are kept; a violation outside any member replaces the whole top-level
// item. The returned error joins every such failure while the sequence
// still covers the whole file.
func (t *Translator) Translate(ctx context.Context, f *core.File) (token.Seq, error) {
	root := (*Context)(nil).Enter(f)

	results := make([]token.Seq, len(f.Statements))
	failures := make([]error, len(f.Statements))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	for i, s := range f.Statements {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], failures[i] = t.translateTop(root, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("translate %s: %w", f.Name, err)
	}

	t.logger.Debug("translated file", "file", f.Name, "items", len(f.Statements))
	return token.Join(results, br(f)), errors.Join(failures...)
}

// TranslateNode translates a single statement (declarations and
// expressions included) with the file as its only ancestor.
func (t *Translator) TranslateNode(n core.Stmt) (token.Seq, error) {
	return t.translateTop((*Context)(nil).Enter(&core.File{}), n)
}

// TranslateType translates a type in isolation.
func (t *Translator) TranslateType(typ core.Type) token.Seq {
	return t.typ(nil, typ)
}

func (t *Translator) translateTop(ctx *Context, s core.Stmt) (out token.Seq, err error) {
	var nested failureSink
	ctx = ctx.collecting(&nested)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ie, ok := r.(*InvariantError)
		if !ok {
			panic(r)
		}
		out = token.Of(br(s), t.failed(s, ie))
		err = ie
	}()

	out = t.stmt(ctx, s)
	if !token.Balanced(out) {
		fail(s, KindUnbalancedScopes, "unbalanced scope tokens")
	}
	return declStart(s, out), errors.Join(nested.errs...)
}

// isolate renders n, replacing it with a FIXME comment when rendering
// violates an invariant. The failure is reported through ctx; without a
// collector it propagates to the enclosing top-level item.
func (t *Translator) isolate(ctx *Context, n core.Node, render func() token.Seq) (out token.Seq) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ie, ok := r.(*InvariantError)
		if !ok || !ctx.report(ie) {
			panic(r)
		}
		out = token.Of(t.failed(n, ie))
	}()
	return render()
}

// failed logs ie and renders the marker that replaces n.
func (t *Translator) failed(n core.Node, ie *InvariantError) token.Token {
	t.logger.Debug("invariant violated", "node", ie.Node, "kind", ie.Kind, "message", ie.Message)
	return t.fixme(n, "translation failed: "+ie.Message)
}

// fixme renders the unsupported-construct marker.
func (t *Translator) fixme(n core.Node, msg string) token.Token {
	return tok(n, token.Comment, fmt.Sprintf("//FIXME: @%s - %s", t.tool, msg))
}

// unsupported flags n and returns the marker followed by passthrough.
func (t *Translator) unsupported(n core.Node, msg string, passthrough token.Seq) token.Seq {
	t.logger.Debug("unsupported construct", "node", n.Info().ID, "message", msg)
	return token.Concat(token.Of(t.fixme(n, msg), br(n)), passthrough)
}

// Invariant kinds.
const (
	KindMissingAnchor    = "missing-anchor"
	KindUnbalancedScopes = "unbalanced-scopes"
	KindTemplate         = "template"
)

// InvariantError reports a broken assumption of a translation rule.
type InvariantError struct {
	Node     token.NodeID
	NodeKind string // syntax node type, e.g. "ClassDecl"
	Kind     string
	Message  string
}

func (e *InvariantError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("%s: %s: %s", e.NodeKind, e.Kind, e.Message)
	}
	return fmt.Sprintf("node %s: %s: %s", e.Node, e.Kind, e.Message)
}

// fail aborts translation of the nearest guarded member, or of the
// enclosing top-level item.
func fail(n core.Node, kind, format string, args ...any) {
	panic(&InvariantError{
		Node:     n.Info().ID,
		NodeKind: strings.TrimPrefix(reflect.TypeOf(n).String(), "*core."),
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	})
}
