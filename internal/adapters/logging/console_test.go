package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipeforge/internal/adapters/logging"
	"pipeforge/internal/ports"
)

func TestConsoleLogger_Info_WritesLevelAndMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(logging.WithOutput(&buf))

	logger.Info("generated artifact")

	assert.Equal(t, "INFO  generated artifact\n", buf.String())
}

func TestConsoleLogger_Fields_AppendedAsKeyValuePairs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(logging.WithOutput(&buf))

	logger.Warn("slow render", ports.F("template", "deploy_service"), ports.F("stages", 4))

	assert.Equal(t, "WARN  slow render template=deploy_service stages=4\n", buf.String())
}

func TestConsoleLogger_LevelFilter_DropsBelowMinimum(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(logging.WithOutput(&buf), logging.WithLevel(ports.LevelWarn))

	logger.Debug("ignored")
	logger.Info("ignored too")
	logger.Error("kept")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "ERROR"))
}

func TestConsoleLogger_With_CarriesFieldsToChildEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := logging.NewConsoleLogger(logging.WithOutput(&buf))

	child := base.With(ports.F("command", "generate"))
	child.Info("done", ports.F("out", "pipeline.yaml"))

	assert.Equal(t, "INFO  done command=generate out=pipeline.yaml\n", buf.String())

	// The parent is unaffected.
	buf.Reset()
	base.Info("done")
	assert.Equal(t, "INFO  done\n", buf.String())
}

func TestNopLogger_ImplementsLogger(t *testing.T) {
	t.Parallel()

	var logger ports.Logger = ports.NopLogger{}
	logger.Debug("x")
	logger = logger.With(ports.F("k", "v"))
	logger.Error("y")
}
