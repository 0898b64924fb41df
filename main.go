package main

import (
	"os"

	"github.com/cloudposse/preform/cmd"
	errUtils "github.com/cloudposse/preform/errors"
	log "github.com/cloudposse/preform/pkg/logger"
)

func main() {
	log.Default().SetReportTimestamp(false)

	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(run())
}

// run executes the application and returns an exit code.
func run() int {
	err := cmd.Execute()
	if err != nil {
		formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
		os.Stderr.WriteString(formatted + "\n")

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return 0
}
