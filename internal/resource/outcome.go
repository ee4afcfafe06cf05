package resource

// OutcomeCode tags the result of one operation attempt.
type OutcomeCode string

const (
	OutcomeSucceeded              OutcomeCode = "succeeded"
	OutcomeFailed                 OutcomeCode = "failed"
	OutcomeSkippedExcluded        OutcomeCode = "skipped-excluded"
	OutcomeSkippedNotConfirmed    OutcomeCode = "skipped-not-confirmed"
	OutcomeSkippedAlreadyTerminal OutcomeCode = "skipped-already-terminal"
)

// Outcome is the immutable result of one operation attempt on one Ref.
// Simulated marks successes recorded in dry-run mode, where no remote
// call was made.
type Outcome struct {
	Code      OutcomeCode
	Reason    string
	Simulated bool
}

func Succeeded() Outcome {
	return Outcome{Code: OutcomeSucceeded}
}

func SimulatedSuccess() Outcome {
	return Outcome{Code: OutcomeSucceeded, Simulated: true}
}

func Failed(reason string) Outcome {
	return Outcome{Code: OutcomeFailed, Reason: reason}
}

func SkippedNotConfirmed() Outcome {
	return Outcome{Code: OutcomeSkippedNotConfirmed}
}

func SkippedAlreadyTerminal(state RunState) Outcome {
	return Outcome{Code: OutcomeSkippedAlreadyTerminal, Reason: "already in state " + string(state)}
}
