package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/promptaudit/cli"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	t.Parallel()

	root := cli.NewRootCmd("0.3.0")

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "analyze")
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "version")
}

func TestRootCmd_Version(t *testing.T) {
	t.Parallel()

	root := cli.NewRootCmd("0.3.0")
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "promptaudit 0.3.0\n", stdout.String())
}

func TestRootCmd_AnalyzeRequiresArgument(t *testing.T) {
	t.Parallel()

	root := cli.NewRootCmd("0.3.0")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"analyze"})

	assert.Error(t, root.Execute())
}
