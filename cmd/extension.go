package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// RunExtension attempts to find and execute an external fv-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and
// executed, and (false, 0) if no extension was found. The configured API
// address is passed in $FINVIEW_API so extensions talk to the same service
// as fv itself.
func RunExtension(subcommand string, args []string) (bool, int) {
	lp, err := exec.LookPath("fv-" + subcommand)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), apiEnv+"="+*apiAddr)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", "fv-"+subcommand, err)
		return true, 1
	}

	return true, 0
}
