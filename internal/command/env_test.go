package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnvBlock(t *testing.T) {
	tests := []struct {
		name  string
		block []byte
		want  map[string]string
	}{
		{name: "nil", block: nil, want: nil},
		{name: "only terminator", block: []byte("\x00"), want: nil},
		{
			name:  "terminated block",
			block: []byte("TERM=xterm-256color\x00LANG=C.UTF-8\x00\x00"),
			want:  map[string]string{"TERM": "xterm-256color", "LANG": "C.UTF-8"},
		},
		{
			name:  "missing terminator",
			block: []byte("A=1\x00B=2"),
			want:  map[string]string{"A": "1", "B": "2"},
		},
		{
			name:  "stops at first empty entry",
			block: []byte("A=1\x00\x00B=2\x00\x00"),
			want:  map[string]string{"A": "1"},
		},
		{
			name:  "value keeps extra equals",
			block: []byte("OPTS=a=b=c\x00\x00"),
			want:  map[string]string{"OPTS": "a=b=c"},
		},
		{
			name:  "empty value allowed",
			block: []byte("EMPTY=\x00\x00"),
			want:  map[string]string{"EMPTY": ""},
		},
		{
			name:  "malformed entries skipped",
			block: []byte("NOEQUALS\x00=nokey\x00OK=1\x00\x00"),
			want:  map[string]string{"OK": "1"},
		},
		{
			name:  "last duplicate wins",
			block: []byte("A=1\x00A=2\x00\x00"),
			want:  map[string]string{"A": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEnvBlock(tt.block))
		})
	}
}

func TestFormatEnvBlock(t *testing.T) {
	block := FormatEnvBlock(map[string]string{"B": "2", "A": "1"})
	assert.Equal(t, []byte("A=1\x00B=2\x00\x00"), block)
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, ParseEnvBlock(block))

	assert.Equal(t, []byte{0}, FormatEnvBlock(nil))
}

func TestParseEnvList(t *testing.T) {
	got := ParseEnvList([]string{"A=1", "bad", "=x", "B=", "A=3"})
	assert.Equal(t, map[string]string{"A": "3", "B": ""}, got)
	assert.Nil(t, ParseEnvList(nil))
}
