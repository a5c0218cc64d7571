package kotlin

import (
	"maps"
	"slices"

	"github.com/leapstack-labs/swiftkt/pkg/token"
)

// RenameTable maps source identifiers to their Kotlin equivalents.
// Lookups are by exact token value.
type RenameTable map[string]string

// defaultRenames is the built-in table. Callers receive copies.
var defaultRenames = RenameTable{
	"Log":                        "Logger",
	"lowercased":                 "lowercase",
	"uppercased":                 "uppercase",
	"hasPrefix":                  "startsWith",
	"hasSuffix":                  "endsWith",
	"compactMap":                 "mapNotNull",
	"wait":                       "acquire",
	"signal":                     "release",
	"forceEmptyToNil":            "forceEmptyToNull",
	"emptyStringAsNilEquivalent": "emptyStringAsNullEquivalent",
	"isNilOrEmpty":               "isNullOrEmpty()",
	"sharedInstance":             "instance",
	"compare":                    "compareTo",
	"removeValue":                "remove",
	"replacingOccurrences":       "replace",
	"DispatchSemaphore":          "Semaphore",

	"XCTAssert":                   "assertTrue",
	"XCTAssertTrue":               "assertTrue",
	"XCTAssertFalse":              "assertFalse",
	"XCTAssertEqual":              "assertEquals",
	"XCTAssertNil":                "assertNull",
	"XCTAssertNotNil":             "assertNotNull",
	"XCTFail":                     "fail",
	"XCTAssertGreaterThan":        "assertGreaterThan",
	"XCTAssertLessThan":           "assertLessThan",
	"XCTAssertGreaterThanOrEqual": "assertGreaterThanOrEqual",
	"XCTAssertLessThanOrEqual":    "assertLessThanOrEqual",
}

// DefaultRenames returns a copy of the built-in rename table.
func DefaultRenames() RenameTable {
	return maps.Clone(defaultRenames)
}

// Merge returns a new table with extra layered over t.
func (t RenameTable) Merge(extra map[string]string) RenameTable {
	out := maps.Clone(t)
	if out == nil {
		out = RenameTable{}
	}
	maps.Copy(out, extra)
	return out
}

// Lookup returns the replacement for name.
func (t RenameTable) Lookup(name string) (string, bool) {
	v, ok := t[name]
	return v, ok
}

// Keys returns the source names in sorted order.
func (t RenameTable) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Apply rewrites identifier tokens whose value has an entry.
func (t RenameTable) Apply(s token.Seq) token.Seq {
	if len(t) == 0 {
		return s
	}
	return token.Map(s, func(tk token.Token) token.Token {
		if tk.Kind != token.Identifier {
			return tk
		}
		if v, ok := t[tk.Value]; ok {
			tk.Value = v
		}
		return tk
	})
}
