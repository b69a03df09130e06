package mulcalc

import (
	"fmt"
	"regexp"
	"strconv"
)

var instructionRE = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

type MulReconciler interface {
	SetInputs(input string)
	ValidateInputs() error
	Total() int
	EnabledTotal() int
}

// MulReconcilerImpl folds mul, do and don't instructions left to right.
// Products always count towards Total; they count towards EnabledTotal
// only while the most recent toggle was do(). Folding starts enabled.
type MulReconcilerImpl struct {
	Input   string
	total   int
	enabled int
}

func (mr *MulReconcilerImpl) SetInputs(input string) {
	mr.Input = input
}

func (mr *MulReconcilerImpl) ValidateInputs() error {
	total, enabledTotal := 0, 0
	enabled := true
	for _, match := range instructionRE.FindAllStringSubmatch(mr.Input, -1) {
		switch match[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			x, err := strconv.Atoi(match[1])
			if err != nil {
				return fmt.Errorf("operand %q: %w", match[1], err)
			}
			y, err := strconv.Atoi(match[2])
			if err != nil {
				return fmt.Errorf("operand %q: %w", match[2], err)
			}
			total += x * y
			if enabled {
				enabledTotal += x * y
			}
		}
	}
	mr.total = total
	mr.enabled = enabledTotal
	return nil
}

func (mr *MulReconcilerImpl) Total() int {
	return mr.total
}

func (mr *MulReconcilerImpl) EnabledTotal() int {
	return mr.enabled
}
