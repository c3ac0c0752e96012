package core

import (
	"errors"
	"fmt"
	"os/exec"
)

// Launch runs an external program and blocks until it reaches a true
// terminal state; a stopped child does not end the wait. The argument
// vector is passed through unmodified, so args[0] is the name the
// child sees, and the executable is resolved with the OS search-path
// convention.
//
// The child's own exit status never becomes a shell error: a program
// that exits non-zero or dies to a signal still yields Continue with
// nothing reported. Only failing to start the program at all (not
// found, not executable, process creation failure) is reported.
func (s *Shell) Launch(args []string) Signal {
	cmd := exec.Command(args[0])
	cmd.Args = args
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(s.Stderr(), "chrish: %v\n", err)
	}

	return Continue
}
