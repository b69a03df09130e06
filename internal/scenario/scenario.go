// Package scenario loads report fixtures written in HCL:
//
//	scenario "duplicate_in_middle" {
//	  levels = [8, 6, 4, 4, 1]
//	  safe   = false
//	  loose  = true
//	}
//
// The body is walked as raw hclsyntax, so attributes are evaluated without
// an evaluation context and must be literals.
package scenario

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is one named report with optional expectations. A nil Safe or
// Loose means the fixture makes no claim about that mode.
type Scenario struct {
	Name   string
	Levels []int
	Safe   *bool
	Loose  *bool
}

// Load parses the scenario file at path.
func Load(path string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	return decodeFile(f, diags)
}

// Parse parses scenarios from src; filename is only used in diagnostics.
func Parse(src []byte, filename string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	return decodeFile(f, diags)
}

func decodeFile(f *hcl.File, diags hcl.Diagnostics) ([]Scenario, error) {
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing scenarios: %w", diags)
	}
	fileBody, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("file body not a *hclsyntax.Body")
	}
	if len(fileBody.Attributes) > 0 {
		return nil, fmt.Errorf("%w: top-level attributes are not allowed", ErrInvalidScenario)
	}

	var scenarios []Scenario
	seen := map[string]bool{}
	for _, blk := range fileBody.Blocks {
		if blk.Type != "scenario" || len(blk.Labels) != 1 {
			return nil, fmt.Errorf("%w: %s: expected a scenario block with one label", ErrInvalidScenario, blk.DefRange())
		}
		name := blk.Labels[0]
		if seen[name] {
			return nil, fmt.Errorf("%w: %s: duplicate scenario %q", ErrInvalidScenario, blk.DefRange(), name)
		}
		seen[name] = true

		sc, err := decodeScenario(name, blk.Body)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

func decodeScenario(name string, b *hclsyntax.Body) (Scenario, error) {
	sc := Scenario{Name: name}
	if len(b.Blocks) > 0 {
		return sc, fmt.Errorf("%w: %s: nested blocks are not allowed", ErrInvalidScenario, name)
	}

	// map iteration order is random; sort so errors are reproducible
	names := make([]string, 0, len(b.Attributes))
	for attrName := range b.Attributes {
		names = append(names, attrName)
	}
	sort.Strings(names)

	hasLevels := false
	for _, attrName := range names {
		val, diags := b.Attributes[attrName].Expr.Value(nil)
		if diags.HasErrors() {
			return sc, fmt.Errorf("%w: %s.%s: %w", ErrInvalidScenario, name, attrName, diags)
		}
		switch attrName {
		case "levels":
			levels, err := decodeLevels(val)
			if err != nil {
				return sc, fmt.Errorf("%w: %s.levels: %w", ErrInvalidScenario, name, err)
			}
			sc.Levels = levels
			hasLevels = true
		case "safe", "loose":
			if val.IsNull() || val.Type() != cty.Bool {
				return sc, fmt.Errorf("%w: %s.%s: expected a bool", ErrInvalidScenario, name, attrName)
			}
			v := val.True()
			if attrName == "safe" {
				sc.Safe = &v
			} else {
				sc.Loose = &v
			}
		default:
			return sc, fmt.Errorf("%w: %s: unknown attribute %q", ErrInvalidScenario, name, attrName)
		}
	}
	if !hasLevels {
		return sc, fmt.Errorf("%w: %s: missing levels", ErrInvalidScenario, name)
	}
	return sc, nil
}

func decodeLevels(val cty.Value) ([]int, error) {
	ty := val.Type()
	if val.IsNull() || !(ty.IsListType() || ty.IsTupleType()) {
		return nil, fmt.Errorf("expected a list of numbers")
	}
	n := val.LengthInt()
	levels := make([]int, 0, n)
	for i := 0; i < n; i++ {
		elem := val.Index(cty.NumberIntVal(int64(i)))
		if elem.IsNull() || elem.Type() != cty.Number {
			return nil, fmt.Errorf("element %d is not a number", i)
		}
		bf := elem.AsBigFloat()
		if !bf.IsInt() || bf.Sign() < 0 {
			return nil, fmt.Errorf("element %d is not a non-negative integer", i)
		}
		v, acc := bf.Int64()
		if acc != big.Exact || v > 1<<32-1 {
			return nil, fmt.Errorf("element %d is out of range", i)
		}
		levels = append(levels, int(v))
	}
	return levels, nil
}
