package rpc

import (
	"context"
	"errors"
	"math"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/monotykamary/openmux-pty/gen/proto"
	"github.com/monotykamary/openmux-pty/internal/command"
	"github.com/monotykamary/openmux-pty/internal/session"
	"github.com/monotykamary/openmux-pty/internal/storage"
)

// violations collects field errors of one request.
type violations []*errdetails.BadRequest_FieldViolation

func (v *violations) add(field, desc string) {
	*v = append(*v, &errdetails.BadRequest_FieldViolation{
		Field:       field,
		Description: desc,
	})
}

// err returns an InvalidArgument status carrying a BadRequest, or nil when
// nothing was added.
func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	st := status.New(codes.InvalidArgument, "validation failed")
	withDetails, err := st.WithDetails(&errdetails.BadRequest{FieldViolations: v})
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

func invalid(field, desc string) error {
	var v violations
	v.add(field, desc)
	return v.err()
}

func checkHandle(v *violations, handle int32) {
	if handle <= 0 {
		v.add("handle", "handle must be greater than 0")
	}
}

func checkDimension(v *violations, field string, n uint32, optional bool) {
	switch {
	case n == 0 && !optional:
		v.add(field, field+" must be greater than 0")
	case n > math.MaxUint16:
		v.add(field, field+" must not exceed 65535")
	}
}

func validateSpawn(req *pb.SpawnRequest) error {
	var v violations
	checkDimension(&v, "cols", req.Cols, true)
	checkDimension(&v, "rows", req.Rows, true)
	return v.err()
}

func validateWrite(req *pb.WriteRequest) error {
	var v violations
	checkHandle(&v, req.Handle)
	if len(req.Data) == 0 {
		v.add("data", "data is required")
	}
	return v.err()
}

func validateRead(req *pb.ReadRequest) error {
	var v violations
	checkHandle(&v, req.Handle)
	if req.MaxBytes < 0 {
		v.add("max_bytes", "max_bytes must not be negative")
	}
	return v.err()
}

func validateResize(req *pb.ResizeRequest) error {
	var v violations
	checkHandle(&v, req.Handle)
	checkDimension(&v, "cols", req.Cols, false)
	checkDimension(&v, "rows", req.Rows, false)
	return v.err()
}

func validateKill(req *pb.KillRequest) error {
	var v violations
	checkHandle(&v, req.Handle)
	if req.Signal < 0 || req.Signal > 64 {
		v.add("signal", "signal must be between 0 and 64")
	}
	return v.err()
}

func validateHandle(req *pb.HandleRequest) error {
	var v violations
	checkHandle(&v, req.Handle)
	return v.err()
}

// toStatus maps a domain error onto a gRPC status.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, command.ErrParse):
		return invalid("command", err.Error())
	case errors.Is(err, session.ErrInvalidSize):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, session.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, session.ErrChildExited):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, session.ErrHandlesExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, session.ErrSpawn):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
