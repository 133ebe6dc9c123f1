// Package rpc exposes sessions over gRPC.
//
// Three services are served: ptyhost.v1.PtyService (spawn, I/O, resize,
// kill, status), ptyhost.v1.SystemService (ping, version) and
// ptyhost.v1.JournalService (recorded session history). The messages and
// service stubs are generated from proto/ptyhost/v1/ptyhost.proto into
// gen/proto; this package holds the server implementations and a client
// wrapper.
package rpc
