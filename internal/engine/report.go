package engine

import "github.com/sweepr-io/sweepr/internal/resource"

// Summarize derives counts from a finished report plus the set of
// resources the exclusion filter removed before execution. Every item
// that entered the executor contributes exactly one outcome, so Total
// equals the number of report entries.
func Summarize(report *resource.Report, excluded []resource.Ref) resource.Summary {
	s := resource.Summary{
		SkippedExcluded: len(excluded),
		Total:           report.Len(),
	}
	for _, e := range report.Entries() {
		switch e.Outcome.Code {
		case resource.OutcomeSucceeded:
			s.Succeeded++
		case resource.OutcomeFailed:
			s.Failed++
		case resource.OutcomeSkippedNotConfirmed:
			s.SkippedNotConfirmed++
		case resource.OutcomeSkippedAlreadyTerminal:
			s.SkippedAlreadyTerminal++
		case resource.OutcomeSkippedExcluded:
			// Excluded items never enter the executor; tolerate the
			// tag anyway if a caller recorded one.
			s.SkippedExcluded++
			s.Total--
		}
	}
	return s
}
