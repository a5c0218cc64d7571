// Package core defines the Swift syntax tree consumed by the translator.
//
// This package contains:
//   - The node families (Decl, Stmt, Expr, Type, Pattern, Condition)
//   - Closed variant sets for declaration bodies and members
//   - Small syntactic helpers (modifier queries, pattern names)
//
// Each family is a closed set: the marker methods are unexported, so only
// this package can add variants and every type switch over a family can be
// checked for exhaustiveness.
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
