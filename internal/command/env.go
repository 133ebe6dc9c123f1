package command

import (
	"bytes"
	"sort"
	"strings"
)

// ParseEnvBlock decodes a block of NUL-terminated KEY=VALUE entries.
// The block ends at the first empty entry or at the end of input.
// Entries without '=' or with an empty key are skipped; for duplicated
// keys the last one wins. An empty block yields nil.
func ParseEnvBlock(block []byte) map[string]string {
	var env map[string]string

	for len(block) > 0 {
		entry := block
		rest := []byte(nil)
		if i := bytes.IndexByte(block, 0); i >= 0 {
			entry, rest = block[:i], block[i+1:]
		}
		if len(entry) == 0 {
			break
		}
		block = rest

		key, value, ok := strings.Cut(string(entry), "=")
		if !ok || key == "" {
			continue
		}
		if env == nil {
			env = make(map[string]string)
		}
		env[key] = value
	}

	return env
}

// FormatEnvBlock encodes env in the format read by ParseEnvBlock,
// including the terminating empty entry. Keys are sorted.
func FormatEnvBlock(env map[string]string) []byte {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(env[k])
		buf.WriteByte(0)
	}
	buf.WriteByte(0)
	return buf.Bytes()
}

// ParseEnvList converts KEY=VALUE strings into a map using the same rules
// as ParseEnvBlock.
func ParseEnvList(entries []string) map[string]string {
	var env map[string]string
	for _, e := range entries {
		key, value, ok := strings.Cut(e, "=")
		if !ok || key == "" {
			continue
		}
		if env == nil {
			env = make(map[string]string)
		}
		env[key] = value
	}
	return env
}
