//go:build governance

package core_test

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/leapstack-labs/swiftkt"

// =============================================================================
// REACHABILITY TEST - Every syntax node must have a producer or a consumer
// =============================================================================

// TestGovernance_NodesAreReachable verifies that every exported node type in
// pkg/core is referenced outside the package. Node kinds the loader cannot
// build and the translator never matches are dead weight in the closed
// unions.
func TestGovernance_NodesAreReachable(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes |
			packages.NeedTypesInfo | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	var corePkg *packages.Package
	for _, p := range pkgs {
		if p.PkgPath == modulePath+"/pkg/core" {
			corePkg = p
			break
		}
	}
	if corePkg == nil {
		t.Fatal("Could not find pkg/core")
	}

	node, ok := corePkg.Types.Scope().Lookup("Node").(*types.TypeName)
	if !ok {
		t.Fatal("pkg/core does not declare Node")
	}
	nodeIface, ok := node.Type().Underlying().(*types.Interface)
	if !ok {
		t.Fatal("core.Node is not an interface")
	}

	// Exported struct types whose pointer implements core.Node
	nodes := make(map[types.Object]string)
	scope := corePkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() {
			continue
		}
		if _, isStruct := obj.Type().Underlying().(*types.Struct); !isStruct {
			continue
		}
		if types.Implements(types.NewPointer(obj.Type()), nodeIface) {
			nodes[obj] = name
		}
	}

	usage := make(map[string]map[string]bool)
	for _, name := range nodes {
		usage[name] = make(map[string]bool)
	}
	base := modulePath + "/"
	for _, p := range pkgs {
		if p.PkgPath == corePkg.PkgPath || strings.HasSuffix(p.PkgPath, "_test") || p.TypesInfo == nil {
			continue
		}
		for _, obj := range p.TypesInfo.Uses {
			if name, exists := nodes[obj]; exists {
				usage[name][strings.TrimPrefix(p.PkgPath, base)] = true
			}
		}
	}

	for name, users := range usage {
		switch {
		case len(users) == 0:
			t.Errorf("UNREACHABLE NODE: 'core.%s' is used by no package.\n"+
				"   Fix: register it with the loader or give it a translation rule.", name)
		case !users["pkg/kotlin"]:
			t.Logf("WARNING: 'core.%s' has no translation rule", name)
		}
	}
}

// =============================================================================
// PURITY TEST - No type alias re-exports of core types
// =============================================================================

// TestGovernance_NoTypeAliasReexports ensures the translator and the
// fragment parser don't re-export core types as aliases. Consumers name
// syntax nodes through pkg/core only.
func TestGovernance_NoTypeAliasReexports(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	checked := map[string]bool{
		modulePath + "/pkg/parser": true,
		modulePath + "/pkg/kotlin": true,
		modulePath + "/pkg/format": true,
	}

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 || !checked[pkg.PkgPath] {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			typeName, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !typeName.Exported() || !typeName.IsAlias() {
				continue
			}
			named, ok := types.Unalias(typeName.Type()).(*types.Named)
			if !ok || named.Obj().Pkg() == nil {
				continue
			}
			if named.Obj().Pkg().Path() == modulePath+"/pkg/core" {
				t.Errorf("PURITY VIOLATION: Package '%s' re-exports type alias '%s'.\n"+
					"   Fix: Remove the alias. Consumers should use core.%s directly.",
					strings.TrimPrefix(pkg.PkgPath, modulePath+"/"), name, named.Obj().Name())
			}
		}
	}
}
