package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		program string
		args    []string
	}{
		{name: "single word", line: "bash", program: "bash", args: []string{}},
		{name: "arguments", line: "ls -la /tmp", program: "ls", args: []string{"-la", "/tmp"}},
		{name: "double quotes", line: `echo "hello world"`, program: "echo", args: []string{"hello world"}},
		{name: "single quotes keep backslash", line: `printf '%s\n' x`, program: "printf", args: []string{`%s\n`, "x"}},
		{name: "escaped space", line: `cat my\ file`, program: "cat", args: []string{"my file"}},
		{name: "adjacent quoting", line: `echo 'a'"b"c`, program: "echo", args: []string{"abc"}},
		{name: "no expansion", line: `echo $HOME`, program: "echo", args: []string{"$HOME"}},
		{name: "surrounding whitespace", line: "  sh   -c  true  ", program: "sh", args: []string{"-c", "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, args, err := ParseCommandLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.program, program)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestParseCommandLineErrors(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		empty bool
	}{
		{name: "unbalanced double quote", line: `echo "oops`},
		{name: "unbalanced single quote", line: `echo 'oops`},
		{name: "trailing escape", line: `echo oops\`},
		{name: "empty", line: "", empty: true},
		{name: "only whitespace", line: " \t ", empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCommandLine(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			if tt.empty {
				assert.ErrorIs(t, err, ErrEmptyCommand)
			}
		})
	}
}

func TestNew(t *testing.T) {
	spec, err := New(`sh -c "exit 3"`, "/tmp", map[string]string{"A": "1"})
	require.NoError(t, err)

	assert.Equal(t, "sh", spec.Program)
	assert.Equal(t, []string{"-c", "exit 3"}, spec.Args)
	assert.Equal(t, "/tmp", spec.Dir)
	assert.Equal(t, map[string]string{"A": "1"}, spec.Env)

	again, err := New(spec.String(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, spec.Program, again.Program)
	assert.Equal(t, spec.Args, again.Args)

	_, err = New(`"`, "", nil)
	assert.ErrorIs(t, err, ErrParse)
}

func TestBuild(t *testing.T) {
	t.Setenv("PTYHOST_TEST_INHERITED", "parent")
	t.Setenv("PTYHOST_TEST_OVERRIDE", "parent")

	spec := &Spec{
		Program: "env",
		Args:    []string{"-0"},
		Dir:     "/tmp",
		Env: map[string]string{
			"PTYHOST_TEST_OVERRIDE": "child",
			"PTYHOST_TEST_NEW":      "x=y",
		},
	}

	cmd, err := spec.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"env", "-0"}, cmd.Args)
	assert.Equal(t, "/tmp", cmd.Dir)
	assert.Nil(t, cmd.Process, "Build must not start the process")

	got := ParseEnvList(cmd.Env)
	assert.Equal(t, "parent", got["PTYHOST_TEST_INHERITED"])
	assert.Equal(t, "child", got["PTYHOST_TEST_OVERRIDE"])
	assert.Equal(t, "x=y", got["PTYHOST_TEST_NEW"])
	assert.Equal(t, "/tmp", got["PWD"])
}

func TestBuildEmptyProgram(t *testing.T) {
	_, err := (&Spec{}).Build()
	assert.ErrorIs(t, err, ErrEmptyProgram)
}
