package resource

// Entry pairs one processed resource with its recorded outcome.
type Entry struct {
	Ref     Ref
	Outcome Outcome
}

// Report is the ordered record of outcomes for a single run. It is
// owned by one invocation, appended to by the executor, and read-only
// once the run completes.
type Report struct {
	entries []Entry
}

func NewReport() *Report {
	return &Report{}
}

// Append records the outcome for one resource.
func (r *Report) Append(ref Ref, out Outcome) {
	r.entries = append(r.entries, Entry{Ref: ref, Outcome: out})
}

// Merge appends all entries of other, preserving their order.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.entries = append(r.entries, other.entries...)
}

// Entries returns the recorded entries in processing order.
func (r *Report) Entries() []Entry {
	return r.entries
}

func (r *Report) Len() int {
	return len(r.entries)
}

// Summary holds derived counts over a run. Total counts items that
// entered the executor; excluded items are reported separately and do
// not contribute to Total.
type Summary struct {
	Succeeded              int
	Failed                 int
	SkippedExcluded        int
	SkippedNotConfirmed    int
	SkippedAlreadyTerminal int
	Total                  int
}
