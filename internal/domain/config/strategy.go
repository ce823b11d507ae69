package config

// FailureStrategy is a declarative retry/fallback policy attached to a
// stage or step. Strategies nest through OnRetryFailure to arbitrary depth;
// the value types make a cycle unrepresentable, so no depth cap is applied
// anywhere the structure is consumed.
type FailureStrategy struct {
	OnFailure OnFailure
}

// OnFailure pairs the error classes a strategy reacts to with the action
// taken when one of them occurs.
type OnFailure struct {
	Errors []string // AllErrors, Timeout, Authentication, Verification, ...
	Action FailureAction
}

// FailureAction is the reaction to a matched failure.
type FailureAction struct {
	Type string // Retry, Abort, Ignore, MarkAsSuccess, StageRollback, ManualIntervention
	Spec *ActionSpec
}

// ActionSpec carries the parameters of a failure action. OnRetryFailure is
// the continuation applied when the retries themselves are exhausted.
type ActionSpec struct {
	RetryCount     int
	RetryIntervals []string
	OnRetryFailure *FailureStrategy
}
