package rpc

import (
	"context"

	"go.uber.org/zap"

	pb "github.com/monotykamary/openmux-pty/gen/proto"
)

// SystemService provides a health check (Ping) and version introspection.
type SystemService struct {
	pb.UnimplementedSystemServiceServer
	version string
	build   string
	logger  *zap.Logger
}

var _ pb.SystemServiceServer = (*SystemService)(nil)

// NewSystemService creates a SystemService.
// version and build are typically injected at link time via -ldflags.
func NewSystemService(version, build string, logger *zap.Logger) *SystemService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemService{version: version, build: build, logger: logger.Named("system")}
}

// Ping echoes the request message back to the caller.
// A missing message is treated as a plain liveness check and echoes "pong".
func (s *SystemService) Ping(_ context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	msg := req.Message
	if msg == "" {
		msg = "pong"
	}
	s.logger.Debug("ping", zap.String("message", msg))
	return &pb.PingResponse{Message: msg}, nil
}

// Version returns the compiled-in version and build strings.
func (s *SystemService) Version(context.Context, *pb.Empty) (*pb.VersionResponse, error) {
	return &pb.VersionResponse{Version: s.version, Build: s.build}, nil
}
