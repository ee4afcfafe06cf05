package resource

// Kind identifies the category of a deletable resource.
type Kind string

const (
	KindResourceGroup Kind = "resource-group"
	KindRepository    Kind = "repository"
	KindVariableGroup Kind = "variable-group"
	KindPipeline      Kind = "pipeline"
	KindPipelineRun   Kind = "pipeline-run"
)

// RunState is the reported state of a pipeline run.
type RunState string

const (
	StateQueued     RunState = "queued"
	StateNotStarted RunState = "notStarted"
	StateInProgress RunState = "inProgress"
	StateCompleted  RunState = "completed"
	StateCanceled   RunState = "canceled"
	StateFailed     RunState = "failed"
)

// Terminal reports whether no further state transition can occur.
func (s RunState) Terminal() bool {
	switch s {
	case StateCompleted, StateCanceled, StateFailed:
		return true
	}
	return false
}

// Ref identifies one deletable unit exposed by a provider.
// ID is opaque and provider-assigned; Name is what exclusion matching
// and confirmation prompts operate on. State is only set for kinds
// that carry one (pipeline runs).
type Ref struct {
	ID    string
	Name  string
	Kind  Kind
	State RunState
}

func (r Ref) String() string {
	if r.Name != "" && r.Name != r.ID {
		return r.Name + " (" + r.ID + ")"
	}
	return r.ID
}

// ExclusionSet holds resource names exempt from processing.
// Membership is exact string match.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds a set from a list of names.
func NewExclusionSet(names ...string) ExclusionSet {
	s := make(ExclusionSet, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is excluded.
func (s ExclusionSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}
