package cli

import (
	"fmt"
	"os"

	"github.com/shared-digitaltechnologies/tombola"
)

var defaultName string = "tombola"

// SetName renames the global command. Call it before Execute.
func SetName(name string) {
	defaultName = name
}

var globalCli *Cli

func cli() *Cli {
	if globalCli == nil {
		cli := NewCli(defaultName, &tombola.GlobalConfig)
		globalCli = &cli
	}
	return globalCli
}

// Execute runs the global command against tombola.GlobalConfig.
func Execute() error {
	return cli().Execute()
}

func ExecuteAndExit() {
	err := Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(0)
}
