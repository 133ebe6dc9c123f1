package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/monotykamary/openmux-pty/gen/proto"
)

type fakeStream struct {
	chunks []*pb.OutputChunk
	err    error
}

func (f *fakeStream) Recv() (*pb.OutputChunk, error) {
	if len(f.chunks) == 0 {
		if f.err != nil {
			return nil, f.err
		}
		return nil, io.EOF
	}
	c := f.chunks[0]
	f.chunks = f.chunks[1:]
	return c, nil
}

func TestCopyOutput(t *testing.T) {
	var out bytes.Buffer
	code, err := copyOutput(&out, &fakeStream{chunks: []*pb.OutputChunk{
		{Data: []byte("hello ")},
		{Data: []byte("world")},
		{Exited: true, ExitCode: 3},
	}})
	require.NoError(t, err)
	assert.Equal(t, int32(3), code)
	assert.Equal(t, "hello world", out.String())
}

func TestCopyOutputWithoutExit(t *testing.T) {
	var out bytes.Buffer
	_, err := copyOutput(&out, &fakeStream{chunks: []*pb.OutputChunk{{Data: []byte("partial")}}})
	assert.Error(t, err)
	assert.Equal(t, "partial", out.String())

	boom := errors.New("boom")
	_, err = copyOutput(&out, &fakeStream{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestParseHandle(t *testing.T) {
	h, err := parseHandle("12")
	require.NoError(t, err)
	assert.Equal(t, int32(12), h)

	for _, bad := range []string{"0", "-3", "abc", "99999999999"} {
		_, err := parseHandle(bad)
		assert.Error(t, err, bad)
	}
}
