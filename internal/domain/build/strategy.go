package build

import (
	"gopkg.in/yaml.v3"

	"pipeforge/internal/domain/config"
)

// FailureStrategies builds the failureStrategies sequence, or nil when the
// list is empty.
func FailureStrategies(strategies []config.FailureStrategy) *yaml.Node {
	if len(strategies) == 0 {
		return nil
	}
	items := make([]*yaml.Node, 0, len(strategies))
	for _, s := range strategies {
		items = append(items, failureStrategy(s))
	}
	return Sequence(items...)
}

// failureStrategy applies the same construction rule at every nesting
// level, recursing through onRetryFailure without a depth cap. The config
// types are a tree by construction, so termination is structural.
func failureStrategy(s config.FailureStrategy) *yaml.Node {
	onFailure := Mapping()
	Put(onFailure, "errors", StringSequence(s.OnFailure.Errors))
	Put(onFailure, "action", failureAction(s.OnFailure.Action))

	node := Mapping()
	Put(node, "onFailure", onFailure)
	return node
}

func failureAction(a config.FailureAction) *yaml.Node {
	node := Mapping()
	PutString(node, "type", a.Type)
	if a.Spec != nil {
		spec := Mapping()
		if a.Spec.RetryCount > 0 {
			Put(spec, "retryCount", intScalar(int64(a.Spec.RetryCount)))
		}
		Put(spec, "retryIntervals", StringSequence(a.Spec.RetryIntervals))
		if a.Spec.OnRetryFailure != nil {
			Put(spec, "onRetryFailure", failureStrategy(*a.Spec.OnRetryFailure))
		}
		if len(spec.Content) > 0 {
			Put(node, "spec", spec)
		}
	}
	return node
}
