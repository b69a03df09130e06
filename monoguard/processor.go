package monoguard

import (
	"bufio"
	"errors"
	"strings"

	"go.uber.org/zap"
)

type ReportProcessor interface {
	SetInputs(string)
	ParseInputs()
	ProcessReports() Summary
}

// Summary holds the counts of one batch run. Total counts parsed records
// only; lines in Skipped take no part in Strict or Loose.
type Summary struct {
	Total   int
	Strict  int
	Loose   int
	Skipped int
}

type ReportProcessorImpl struct {
	RawInputs string
	Reports   []Record
	Skipped   []*ParseError

	logger *zap.Logger
}

// NewReportProcessor returns a processor that logs skipped lines to logger.
func NewReportProcessor(logger *zap.Logger) *ReportProcessorImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportProcessorImpl{logger: logger}
}

func (rp *ReportProcessorImpl) SetInputs(inputs string) {
	rp.RawInputs = inputs
}

func (rp *ReportProcessorImpl) ParseInputs() {
	if rp.logger == nil {
		rp.logger = zap.NewNop()
	}
	rp.Reports = nil
	rp.Skipped = nil

	scanner := bufio.NewScanner(strings.NewReader(rp.RawInputs))
	scanner.Buffer(make([]byte, 0, 64*1024), len(rp.RawInputs)+1)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		record, err := ParseRecord(lineNo, scanner.Text())
		var perr *ParseError
		if errors.As(err, &perr) {
			rp.Skipped = append(rp.Skipped, perr)
			rp.logger.Warn("skipping report line",
				zap.Int("line", perr.Line),
				zap.String("token", perr.Token),
				zap.Error(perr.Err))
			continue
		}
		rp.Reports = append(rp.Reports, record)
	}
}

func (rp *ReportProcessorImpl) ProcessReports() Summary {
	summary := Summary{
		Total:   len(rp.Reports),
		Skipped: len(rp.Skipped),
	}
	for _, report := range rp.Reports {
		if IsSafe(report) {
			summary.Strict++
		}
		if IsLooseSafe(report) {
			summary.Loose++
		}
	}
	if rp.logger != nil {
		rp.logger.Debug("processed reports",
			zap.Int("total", summary.Total),
			zap.Int("strict", summary.Strict),
			zap.Int("loose", summary.Loose),
			zap.Int("skipped", summary.Skipped))
	}
	return summary
}
