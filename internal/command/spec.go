// Package command describes programs to run inside a pseudo-terminal and
// turns those descriptions into launch requests.
package command

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/kballard/go-shellquote"
)

var (
	// ErrParse is returned for a malformed command line.
	ErrParse = errors.New("malformed command line")
	// ErrEmptyCommand is returned when a command line yields no tokens.
	// It also matches ErrParse.
	ErrEmptyCommand = fmt.Errorf("%w: no program given", ErrParse)
	// ErrEmptyProgram is returned by Build for a Spec without a program.
	ErrEmptyProgram = errors.New("program must not be empty")
)

// Spec is an inert description of a child process.
type Spec struct {
	Program string
	Args    []string
	Dir     string            // Optional: working directory, "" inherits
	Env     map[string]string // Optional: overrides applied on top of os.Environ
}

// New parses a command line and returns the Spec for it.
func New(commandLine, dir string, env map[string]string) (*Spec, error) {
	program, args, err := ParseCommandLine(commandLine)
	if err != nil {
		return nil, err
	}
	return &Spec{
		Program: program,
		Args:    args,
		Dir:     dir,
		Env:     env,
	}, nil
}

// ParseCommandLine splits a command line using POSIX shell quoting rules.
// Quotes and backslash escapes are honoured; no expansion is performed.
func ParseCommandLine(line string) (string, []string, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(words) == 0 {
		return "", nil, ErrEmptyCommand
	}
	return words[0], words[1:], nil
}

// Build turns the Spec into a launch request. It has no side effects.
func (s *Spec) Build() (*exec.Cmd, error) {
	if s.Program == "" {
		return nil, ErrEmptyProgram
	}

	cmd := exec.Command(s.Program, s.Args...)
	cmd.Dir = s.Dir
	cmd.Env = os.Environ()
	if s.Dir != "" {
		// Shells trust PWD for the logical working directory.
		if abs, err := filepath.Abs(s.Dir); err == nil {
			cmd.Env = append(cmd.Env, "PWD="+abs)
		}
	}

	// exec.Cmd keeps the last value of a duplicated key, so appending
	// is enough to override inherited variables.
	keys := make([]string, 0, len(s.Env))
	for k := range s.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Env = append(cmd.Env, k+"="+s.Env[k])
	}

	return cmd, nil
}

// String renders the Spec back as a shell-quoted command line.
func (s *Spec) String() string {
	return shellquote.Join(append([]string{s.Program}, s.Args...)...)
}
