package session

import (
	"os"
	"os/exec"
	"os/user"
)

// DefaultShell returns the user's login shell, falling back to the first
// common shell found on PATH.
func DefaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	for _, shell := range []string{"zsh", "bash", "sh"} {
		if path, err := exec.LookPath(shell); err == nil {
			return path
		}
	}
	return "/bin/sh"
}

// HomeDir returns the user's home directory, or "." if it is unknown.
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return "."
}
