package amr

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// RunCommand runs an external command line application with dir as its
// working directory, streaming the tool's stdout and stderr. A non-zero
// exit status is returned as an error carrying the exit code.
func RunCommand(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if Info != nil {
		Info.Printf("Running external command line application. This may print messages to stdout and/or stderr.\nCommand: %s\n",
			strings.Join(append([]string{name}, args...), " "))
	}

	if err := cmd.Run(); err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("an error was encountered while running %s (return code %d), please inspect stdout and stderr to learn more", name, ee.ExitCode())
		}
		return err
	}
	return nil
}
