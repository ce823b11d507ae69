package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pipeforge/internal/domain/build"
	"pipeforge/internal/domain/config"
	"pipeforge/internal/domain/render"
)

func marshalNode(t *testing.T, node *yaml.Node) string {
	t.Helper()
	out, err := render.Marshal(node)
	require.NoError(t, err)
	return string(out)
}

func TestFailureStrategies_Empty_ReturnsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, build.FailureStrategies(nil))
	assert.Nil(t, build.FailureStrategies([]config.FailureStrategy{}))
}

func TestFailureStrategies_SimpleAbort(t *testing.T) {
	t.Parallel()

	node := build.FailureStrategies([]config.FailureStrategy{{
		OnFailure: config.OnFailure{
			Errors: []string{"AllErrors"},
			Action: config.FailureAction{Type: "Abort"},
		},
	}})

	want := `- onFailure:
    errors:
      - AllErrors
    action:
      type: Abort
`
	assert.Equal(t, want, marshalNode(t, node))
}

func TestFailureStrategies_NestedRetryChain_BuildsEveryLevel(t *testing.T) {
	t.Parallel()

	strategy := config.FailureStrategy{
		OnFailure: config.OnFailure{
			Errors: []string{"Timeout"},
			Action: config.FailureAction{
				Type: "Retry",
				Spec: &config.ActionSpec{
					RetryCount:     2,
					RetryIntervals: []string{"10s", "30s"},
					OnRetryFailure: &config.FailureStrategy{
						OnFailure: config.OnFailure{
							Errors: []string{"AllErrors"},
							Action: config.FailureAction{
								Type: "Retry",
								Spec: &config.ActionSpec{
									RetryCount: 1,
									OnRetryFailure: &config.FailureStrategy{
										OnFailure: config.OnFailure{
											Errors: []string{"AllErrors"},
											Action: config.FailureAction{Type: "Abort"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	out := marshalNode(t, build.FailureStrategies([]config.FailureStrategy{strategy}))

	// Each nesting level re-applies the same construction rule.
	assert.Equal(t, 3, countOccurrences(out, "onFailure:"))
	assert.Equal(t, 2, countOccurrences(out, "onRetryFailure:"))
	assert.Contains(t, out, "type: Abort")
}

func TestFailureStrategies_ActionWithoutSpec_OmitsSpecKey(t *testing.T) {
	t.Parallel()

	node := build.FailureStrategies([]config.FailureStrategy{{
		OnFailure: config.OnFailure{
			Errors: []string{"AllErrors"},
			Action: config.FailureAction{Type: "Ignore", Spec: &config.ActionSpec{}},
		},
	}})

	out := marshalNode(t, node)
	assert.NotContains(t, out, "spec:")
}

func countOccurrences(s, substr string) int {
	count := 0
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			count++
		}
	}
	return count
}
