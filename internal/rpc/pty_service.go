package rpc

import (
	"context"
	"errors"
	"syscall"
	"time"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/monotykamary/openmux-pty/gen/proto"
	"github.com/monotykamary/openmux-pty/internal/command"
	"github.com/monotykamary/openmux-pty/internal/session"
)

const (
	defaultReadBytes = 4096
	maxReadBytes     = 1 << 20
	streamChunkBytes = 32 * 1024
	maxStreamPoll    = 250 * time.Millisecond
)

// PtyOptions configures PtyService.
type PtyOptions struct {
	DefaultSize session.Size  // used when a spawn leaves cols or rows at 0
	Poll        time.Duration // first StreamOutput poll interval
	Logger      *zap.Logger
}

// PtyService implements pb.PtyServiceServer on top of a session registry.
type PtyService struct {
	pb.UnimplementedPtyServiceServer
	registry    *session.Registry
	defaultSize session.Size
	poll        time.Duration
	logger      *zap.Logger
}

var _ pb.PtyServiceServer = (*PtyService)(nil)

// NewPtyService creates a PtyService for registry.
func NewPtyService(registry *session.Registry, opts PtyOptions) *PtyService {
	if opts.DefaultSize.Cols == 0 || opts.DefaultSize.Rows == 0 {
		opts.DefaultSize = session.Size{Cols: 80, Rows: 24}
	}
	if opts.Poll <= 0 {
		opts.Poll = 10 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &PtyService{
		registry:    registry,
		defaultSize: opts.DefaultSize,
		poll:        opts.Poll,
		logger:      opts.Logger.Named("pty"),
	}
}

// Spawn starts a command on a new terminal. An empty command starts the
// user's shell, in the home directory unless a cwd is given.
func (s *PtyService) Spawn(_ context.Context, req *pb.SpawnRequest) (*pb.SpawnResponse, error) {
	if err := validateSpawn(req); err != nil {
		return nil, err
	}

	line, cwd := req.Command, req.Cwd
	if line == "" {
		line = shellquote.Join(session.DefaultShell())
		if cwd == "" {
			cwd = session.HomeDir()
		}
	}

	spec, err := command.New(line, cwd, command.ParseEnvList(req.Env))
	if err != nil {
		return nil, toStatus(err)
	}

	size := s.defaultSize
	if req.Cols != 0 {
		size.Cols = uint16(req.Cols)
	}
	if req.Rows != 0 {
		size.Rows = uint16(req.Rows)
	}

	h, sess, err := s.registry.Open(spec, size)
	if err != nil {
		s.logger.Warn("spawn failed", zap.String("command", req.Command), zap.Error(err))
		return nil, toStatus(err)
	}

	s.logger.Info("session started",
		zap.Int32("handle", int32(h)),
		zap.String("session", sess.ID),
		zap.Int("pid", sess.Pid()),
		zap.String("command", sess.Command),
	)
	return &pb.SpawnResponse{Handle: int32(h), Id: sess.ID, Pid: int32(sess.Pid())}, nil
}

// Write sends input to the terminal.
func (s *PtyService) Write(_ context.Context, req *pb.WriteRequest) (*pb.WriteResponse, error) {
	if err := validateWrite(req); err != nil {
		return nil, err
	}
	sess, err := s.registry.Get(session.Handle(req.Handle))
	if err != nil {
		return nil, toStatus(err)
	}
	if err := sess.Write(req.Data); err != nil {
		return nil, toStatus(err)
	}
	return &pb.WriteResponse{Written: int32(len(req.Data))}, nil
}

// Read returns whatever output is available without waiting. Once the
// child has exited the response has Exited set instead of an error.
func (s *PtyService) Read(_ context.Context, req *pb.ReadRequest) (*pb.ReadResponse, error) {
	if err := validateRead(req); err != nil {
		return nil, err
	}
	sess, err := s.registry.Get(session.Handle(req.Handle))
	if err != nil {
		return nil, toStatus(err)
	}

	size := int(req.MaxBytes)
	switch {
	case size == 0:
		size = defaultReadBytes
	case size > maxReadBytes:
		size = maxReadBytes
	}

	buf := make([]byte, size)
	n, err := sess.ReadAvailable(buf)
	if errors.Is(err, session.ErrChildExited) {
		return &pb.ReadResponse{Exited: true}, nil
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReadResponse{Data: buf[:n]}, nil
}

// StreamOutput pushes output as it appears until the child exits or the
// client goes away. Idle polls back off up to maxStreamPoll; output resets
// the interval. The last message carries the exit code.
func (s *PtyService) StreamOutput(req *pb.HandleRequest, stream grpc.ServerStreamingServer[pb.OutputChunk]) error {
	if err := validateHandle(req); err != nil {
		return err
	}
	sess, err := s.registry.Get(session.Handle(req.Handle))
	if err != nil {
		return toStatus(err)
	}

	ctx := stream.Context()
	buf := make([]byte, streamChunkBytes)
	interval := s.poll
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		n, err := sess.ReadAvailable(buf)
		switch {
		case errors.Is(err, session.ErrChildExited):
			return s.finishStream(sess, buf, stream)
		case err != nil:
			return toStatus(err)
		case n > 0:
			if err := stream.Send(&pb.OutputChunk{Data: append([]byte(nil), buf[:n]...)}); err != nil {
				return err
			}
			interval = s.poll
			continue
		}

		timer.Reset(interval)
		select {
		case <-ctx.Done():
			return toStatus(ctx.Err())
		case <-sess.Done():
			timer.Stop()
		case <-timer.C:
			interval = min(interval*2, maxStreamPoll)
		}
	}
}

// finishStream sends output written just before the exit, then the exit
// code.
func (s *PtyService) finishStream(sess *session.Session, buf []byte, stream grpc.ServerStreamingServer[pb.OutputChunk]) error {
	for {
		n, err := sess.ReadRemaining(buf)
		if err != nil || n == 0 {
			break
		}
		if err := stream.Send(&pb.OutputChunk{Data: append([]byte(nil), buf[:n]...)}); err != nil {
			return err
		}
	}
	return stream.Send(&pb.OutputChunk{Exited: true, ExitCode: sess.ExitCode()})
}

// Resize applies new terminal dimensions.
func (s *PtyService) Resize(_ context.Context, req *pb.ResizeRequest) (*pb.Empty, error) {
	if err := validateResize(req); err != nil {
		return nil, err
	}
	sess, err := s.registry.Get(session.Handle(req.Handle))
	if err != nil {
		return nil, toStatus(err)
	}
	if err := sess.Resize(session.Size{Cols: uint16(req.Cols), Rows: uint16(req.Rows)}); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

// Kill signals the child, SIGKILL unless another signal is given.
func (s *PtyService) Kill(_ context.Context, req *pb.KillRequest) (*pb.Empty, error) {
	if err := validateKill(req); err != nil {
		return nil, err
	}
	sess, err := s.registry.Get(session.Handle(req.Handle))
	if err != nil {
		return nil, toStatus(err)
	}

	if req.Signal == 0 || syscall.Signal(req.Signal) == syscall.SIGKILL {
		err = sess.Kill()
	} else {
		err = sess.Signal(syscall.Signal(req.Signal))
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

// Status describes one session.
func (s *PtyService) Status(_ context.Context, req *pb.HandleRequest) (*pb.SessionStatus, error) {
	if err := validateHandle(req); err != nil {
		return nil, err
	}
	sess, err := s.registry.Get(session.Handle(req.Handle))
	if err != nil {
		return nil, toStatus(err)
	}
	info := sess.Info()
	info.Handle = session.Handle(req.Handle)
	return statusFromInfo(info), nil
}

// Close releases a handle. Unknown handles are not an error.
func (s *PtyService) Close(_ context.Context, req *pb.HandleRequest) (*pb.Empty, error) {
	if err := validateHandle(req); err != nil {
		return nil, err
	}
	if s.registry.Remove(session.Handle(req.Handle)) {
		s.logger.Info("session closed", zap.Int32("handle", req.Handle))
	}
	return &pb.Empty{}, nil
}

// List describes every open session.
func (s *PtyService) List(context.Context, *pb.Empty) (*pb.ListResponse, error) {
	infos := s.registry.List()
	resp := &pb.ListResponse{Sessions: make([]*pb.SessionStatus, 0, len(infos))}
	for _, info := range infos {
		resp.Sessions = append(resp.Sessions, statusFromInfo(info))
	}
	return resp, nil
}

func statusFromInfo(info session.Info) *pb.SessionStatus {
	return &pb.SessionStatus{
		Handle:    int32(info.Handle),
		Id:        info.ID,
		Command:   info.Command,
		Cwd:       info.Dir,
		Pid:       int32(info.Pid),
		Cols:      uint32(info.Size.Cols),
		Rows:      uint32(info.Size.Rows),
		StartedAt: info.StartedAt.UnixMilli(),
		Exited:    info.Exited,
		ExitCode:  info.ExitCode,
	}
}
