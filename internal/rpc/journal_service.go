package rpc

import (
	"context"
	"time"

	pb "github.com/monotykamary/openmux-pty/gen/proto"
	"github.com/monotykamary/openmux-pty/internal/storage"
)

const (
	defaultRecent = 20
	maxRecent     = 500
)

// JournalReader is the read side of the session journal.
type JournalReader interface {
	Recent(ctx context.Context, limit int) ([]*storage.Session, error)
	Get(ctx context.Context, id string) (*storage.Session, error)
}

// JournalService serves recorded sessions.
type JournalService struct {
	pb.UnimplementedJournalServiceServer
	journal JournalReader
}

var _ pb.JournalServiceServer = (*JournalService)(nil)

// NewJournalService creates a JournalService backed by journal.
func NewJournalService(journal JournalReader) *JournalService {
	return &JournalService{journal: journal}
}

// Recent returns the most recently started sessions, newest first.
func (j *JournalService) Recent(ctx context.Context, req *pb.RecentRequest) (*pb.RecentResponse, error) {
	limit := int(req.Limit)
	if limit <= 0 || limit > maxRecent {
		limit = defaultRecent
	}

	records, err := j.journal.Recent(ctx, limit)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.RecentResponse{Entries: make([]*pb.JournalEntry, 0, len(records))}
	for _, r := range records {
		resp.Entries = append(resp.Entries, entryFromRecord(r))
	}
	return resp, nil
}

// Get returns one recorded session.
func (j *JournalService) Get(ctx context.Context, req *pb.GetEntryRequest) (*pb.JournalEntry, error) {
	if req.Id == "" {
		return nil, invalid("id", "id is required")
	}
	r, err := j.journal.Get(ctx, req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	return entryFromRecord(r), nil
}

func entryFromRecord(r *storage.Session) *pb.JournalEntry {
	e := &pb.JournalEntry{
		Id:        r.ID,
		Handle:    r.Handle,
		Command:   r.Command,
		Cwd:       r.Cwd,
		Pid:       int32(r.Pid),
		Cols:      uint32(r.Cols),
		Rows:      uint32(r.Rows),
		StartedAt: r.StartedAt.UnixMilli(),
		ExitedAt:  unixMilli(r.ExitedAt),
		ClosedAt:  unixMilli(r.ClosedAt),
	}
	if r.ExitCode != nil {
		e.Exited = true
		e.ExitCode = *r.ExitCode
	}
	return e
}

func unixMilli(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}
