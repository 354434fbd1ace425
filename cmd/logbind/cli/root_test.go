package cli

import (
	"bytes"
	"testing"

	"git.famapp.in/fampay-inc/logbind/pkg/facade"
	"git.famapp.in/fampay-inc/logbind/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFacade(t *testing.T) {
	t.Helper()
	facade.Reset()
	facade.SetReporter(logger.Nop())
	t.Cleanup(facade.Reset)
}

func TestInfoCommand(t *testing.T) {
	resetFacade(t)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"info"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "facade version:   "+facade.APIVersion)
	assert.Contains(t, out.String(), "(compatible)")
	assert.Contains(t, out.String(), "zapbackend.LoggerFactory")
	assert.Contains(t, out.String(), "zapbackend.MDCAdapter")
}

func TestInfoRejectsArgs(t *testing.T) {
	resetFacade(t)

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"info", "extra"})

	assert.Error(t, cmd.Execute())
}

func TestDemoCommandKeepsRequestIDOutOfProcessContext(t *testing.T) {
	resetFacade(t)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"demo", "--count", "2", "--metrics-port", "0"})

	require.NoError(t, cmd.Execute())

	_, ok := facade.Get("request_id")
	assert.False(t, ok)
}
