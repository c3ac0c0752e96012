package core

import (
	"fmt"
	"os"
)

// AllBuiltins holds every registered shell builtin keyed by name.
// Lookup is a case-sensitive exact match. The registry is filled in
// init and never mutated afterwards.
var AllBuiltins = make(map[string]ShellBuiltin)

// BuiltinNames holds the builtin names in registration order, which is
// the order help lists them in.
var BuiltinNames []string

type ShellBuiltin interface {
	Main(s *Shell, args []string) Signal
}

type ShellBuiltinFunc func(s *Shell, args []string) Signal

func (f ShellBuiltinFunc) Main(s *Shell, args []string) Signal {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

func registerBuiltin(name string, builtin ShellBuiltin) {
	AllBuiltins[name] = builtin
	BuiltinNames = append(BuiltinNames, name)
}

// Cd is the cd shell builtin. It changes the process working
// directory, the one piece of state that outlives a loop iteration.
// Errors are reported, never escalated.
func Cd(s *Shell, args []string) Signal {
	if len(args) < 2 {
		fmt.Fprintln(s.Stderr(), `chrish: expected argument to "cd"`)
		return Continue
	}

	if err := os.Chdir(args[1]); err != nil {
		fmt.Fprintf(s.Stderr(), "chrish: %v\n", err)
	}

	return Continue
}

// Help prints the banner and the registered builtins.
func Help(s *Shell, args []string) Signal {
	w := s.Stdout()
	fmt.Fprintln(w, "Stephen Brennan's CHRISH")
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "The following are built in:")

	for _, name := range BuiltinNames {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w, "Use the man command for information on other programs.")
	return Continue
}

// Exit quits the shell.
func Exit(s *Shell, args []string) Signal {
	return Terminate
}

func init() {
	registerBuiltin("cd", ShellBuiltinFunc(Cd))
	registerBuiltin("help", ShellBuiltinFunc(Help))
	registerBuiltin("exit", ShellBuiltinFunc(Exit))
}
