package cli

import (
	"bytes"
	"testing"

	"github.com/shared-digitaltechnologies/tombola"
	"github.com/stretchr/testify/require"
)

func TestGlobalCli(t *testing.T) {
	globalCli = nil
	t.Cleanup(func() {
		globalCli = nil
		SetName("tombola")
	})

	SetName("minimaltombola")
	require.Equal(t, "minimaltombola", cli().Name())
	require.Same(t, cli(), cli())
	require.Same(t, &tombola.GlobalConfig, cli().Config)

	var out bytes.Buffer
	cli().SetOut(&out)
	cli().SetArgs([]string{"--no-env", "kinds"})
	require.NoError(t, Execute())
	require.Contains(t, out.String(), string(tombola.ShuffleBagKind))
}
