package core

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/abiosoft/readline"
	"github.com/mattn/go-isatty"

	"github.com/chrisf1337/chrish/core/config"
)

// Signal tells the interactive loop whether to keep running.
type Signal int

const (
	// Continue keeps the loop running.
	Continue Signal = iota
	// Terminate stops the loop; the process then exits successfully.
	Terminate
)

// Shell reads command lines one at a time and runs each to completion
// before prompting again. The only state that survives an iteration is
// the process working directory, mutated by the cd builtin.
type Shell struct {
	Config   *config.Configuration
	Readline *readline.Instance

	prompt string
	isTerm bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewShell sets up a shell over the given streams. Line editing and
// history are only enabled when stdin is a terminal.
func NewShell(cfg *config.Configuration, stdin io.Reader, stdout, stderr io.Writer) (*Shell, error) {
	isTerm := false
	if f, ok := stdin.(*os.File); ok {
		isTerm = isatty.IsTerminal(f.Fd())
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}

	rlCfg := &readline.Config{
		Prompt:      prompt,
		HistoryFile: cfg.HistoryFile,
		Stdin:       readline.NewCancelableStdin(stdin),
		Stdout:      stdout,
		Stderr:      stderr,
		FuncIsTerminal: func() bool {
			return isTerm
		},
	}

	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		Config:   cfg,
		Readline: rl,
		prompt:   prompt,
		isTerm:   isTerm,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}, nil
}

// Stdout is the stream for builtin output.
func (s *Shell) Stdout() io.Writer {
	return s.stdout
}

// Stderr is the stream for usage and OS error reports.
func (s *Shell) Stderr() io.Writer {
	return s.stderr
}

// Run is the interactive loop: prompt, read one line, tokenize,
// dispatch, repeat. It returns nil both when the input stream ends and
// when a builtin terminates the shell; either way the process exits
// successfully.
func (s *Shell) Run() error {
	if s.Config.Motd != "" {
		fmt.Fprintln(s.stdout, s.Config.Motd)
	}

	for {
		// readline renders the prompt itself only on a terminal; with
		// redirected input the prompt still belongs to the output
		// stream, so write it here.
		if !s.isTerm {
			fmt.Fprint(s.stdout, s.prompt)
		}

		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			log.Printf("readline: %v", err)
			continue
		}

		if s.Execute(SplitLine(line)) == Terminate {
			return nil
		}
	}
}

// Execute dispatches one tokenized command line. An empty vector is a
// no-op. The first token selects a builtin by exact match, otherwise
// it names an external program to launch.
func (s *Shell) Execute(args []string) Signal {
	if len(args) == 0 {
		return Continue
	}

	if builtin, ok := AllBuiltins[args[0]]; ok {
		return builtin.Main(s, args)
	}

	return s.Launch(args)
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}
