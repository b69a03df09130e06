package pairup

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrLengthMismatch = errors.New("left and right lists must have the same length")
	ErrMalformedLine  = errors.New("expected two location ids")
)

type ListReconciler interface {
	SetInputs(left, right []int)
	ValidateInputs() error
	SortLists()
	ComputeDifferences()
	ComputeSimilarity()
}

type ListReconcilerImpl struct {
	LeftList   []int
	RightList  []int
	Diffs      []int
	TotalDiff  int
	Similarity int
}

func (lr *ListReconcilerImpl) SetInputs(left, right []int) {
	lr.LeftList = left
	lr.RightList = right
}

func (lr *ListReconcilerImpl) SortLists() {
	sort.Ints(lr.LeftList)
	sort.Ints(lr.RightList)
}

func (lr *ListReconcilerImpl) ValidateInputs() error {
	if len(lr.LeftList) != len(lr.RightList) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(lr.LeftList), len(lr.RightList))
	}
	return nil
}

// ComputeDifferences pairs the lists position by position. Call SortLists
// first to pair smallest with smallest.
func (lr *ListReconcilerImpl) ComputeDifferences() {
	lr.Diffs = make([]int, len(lr.LeftList))
	total := 0
	for i := 0; i < len(lr.LeftList); i++ {
		diff := lr.LeftList[i] - lr.RightList[i]
		if diff < 0 {
			diff = -diff
		}
		lr.Diffs[i] = diff
		total += diff
	}
	lr.TotalDiff = total
}

// ComputeSimilarity adds up every left value times the number of times it
// appears in the right list. Both lists must be sorted.
func (lr *ListReconcilerImpl) ComputeSimilarity() {
	scores := make(map[int]int)
	j := 0
	total := 0
	for _, v := range lr.LeftList {
		if _, ok := scores[v]; !ok {
			count := 0
			for j < len(lr.RightList) && lr.RightList[j] <= v {
				if lr.RightList[j] == v {
					count++
				}
				j++
			}
			scores[v] = v * count
		}
		total += scores[v]
	}
	lr.Similarity = total
}

// LineError is a line ParseColumns could not use.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ParseColumns reads two whitespace-separated integers per line. Lines that
// do not match are returned as skipped and logged; blank lines are ignored.
func ParseColumns(raw string, logger *zap.Logger) (left, right []int, skipped []*LineError) {
	if logger == nil {
		logger = zap.NewNop()
	}
	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), len(raw)+1)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		l, r, err := parsePair(fields)
		if err != nil {
			lerr := &LineError{Line: lineNo, Text: line, Err: err}
			skipped = append(skipped, lerr)
			logger.Warn("skipping location line", zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		left = append(left, l)
		right = append(right, r)
	}
	return left, right, skipped
}

func parsePair(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w, got %d fields", ErrMalformedLine, len(fields))
	}
	l, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	r, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}
