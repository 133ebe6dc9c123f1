// Command libptyhost is the shared library loaded by bun-pty through FFI.
//
//	go build -buildmode=c-shared -o librust_pty.so ./cmd/libptyhost
//
// The exported symbols keep the bun-pty names and return codes: a
// positive value is a handle or byte count, 0 is success (or "no data"
// for reads), -1 is an error and -2 means the child has exited. Set
// PTYHOST_DEBUG=1 to get diagnostics on stderr.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/monotykamary/openmux-pty/internal/boundary"
)

func main() {}

//export bun_pty_spawn
func bun_pty_spawn(cmd, cwd, env *C.char, cols, rows C.int) C.int {
	if cmd == nil {
		return C.int(boundary.Error)
	}
	dir := ""
	if cwd != nil {
		dir = C.GoString(cwd)
	}
	return C.int(boundary.Default().Spawn(C.GoString(cmd), dir, envBlock(env), int32(cols), int32(rows)))
}

//export bun_pty_write
func bun_pty_write(handle C.int, data *C.uint8_t, length C.int) C.int {
	if data == nil || length <= 0 {
		return C.int(boundary.Error)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length))
	return C.int(boundary.Default().Write(int32(handle), buf))
}

//export bun_pty_read
func bun_pty_read(handle C.int, out *C.uint8_t, length C.int) C.int {
	if out == nil || length <= 0 {
		return C.int(boundary.Error)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(out)), int(length))
	return C.int(boundary.Default().Read(int32(handle), buf))
}

//export bun_pty_resize
func bun_pty_resize(handle, cols, rows C.int) C.int {
	return C.int(boundary.Default().Resize(int32(handle), int32(cols), int32(rows)))
}

//export bun_pty_kill
func bun_pty_kill(handle C.int) C.int {
	return C.int(boundary.Default().Kill(int32(handle)))
}

//export bun_pty_get_pid
func bun_pty_get_pid(handle C.int) C.int {
	return C.int(boundary.Default().Pid(int32(handle)))
}

// bun_pty_get_exit_code returns -1 while the child runs and 128+signo when
// a signal killed it.
//
//export bun_pty_get_exit_code
func bun_pty_get_exit_code(handle C.int) C.int {
	return C.int(boundary.Default().ExitCode(int32(handle)))
}

//export bun_pty_close
func bun_pty_close(handle C.int) {
	boundary.Default().Close(int32(handle))
}

// envBlock copies a block of NUL-terminated strings ending with an empty
// string out of C memory.
func envBlock(p *C.char) []byte {
	if p == nil {
		return nil
	}

	var block []byte
	for {
		entry := C.GoString(p)
		if entry == "" {
			break
		}
		block = append(block, entry...)
		block = append(block, 0)
		p = (*C.char)(unsafe.Add(unsafe.Pointer(p), len(entry)+1))
	}
	return block
}
