package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/monotykamary/openmux-pty/gen/proto"
)

// Client calls the ptyhost services over one connection.
type Client struct {
	pty     pb.PtyServiceClient
	system  pb.SystemServiceClient
	journal pb.JournalServiceClient
	conn    *grpc.ClientConn // nil when the connection is owned by the caller
}

// Dial connects to a ptyhost daemon at target without transport security.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, err
	}
	c := NewClient(conn)
	c.conn = conn
	return c, nil
}

// NewClient wraps an existing connection. Close leaves it open.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{
		pty:     pb.NewPtyServiceClient(cc),
		system:  pb.NewSystemServiceClient(cc),
		journal: pb.NewJournalServiceClient(cc),
	}
}

// Close closes a connection opened by Dial.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) Spawn(ctx context.Context, req *pb.SpawnRequest) (*pb.SpawnResponse, error) {
	return c.pty.Spawn(ctx, req)
}

func (c *Client) Write(ctx context.Context, handle int32, data []byte) (*pb.WriteResponse, error) {
	return c.pty.Write(ctx, &pb.WriteRequest{Handle: handle, Data: data})
}

func (c *Client) Read(ctx context.Context, handle, maxBytes int32) (*pb.ReadResponse, error) {
	return c.pty.Read(ctx, &pb.ReadRequest{Handle: handle, MaxBytes: maxBytes})
}

// StreamOutput subscribes to the output of handle.
func (c *Client) StreamOutput(ctx context.Context, handle int32) (grpc.ServerStreamingClient[pb.OutputChunk], error) {
	return c.pty.StreamOutput(ctx, &pb.HandleRequest{Handle: handle})
}

func (c *Client) Resize(ctx context.Context, handle int32, cols, rows uint32) error {
	_, err := c.pty.Resize(ctx, &pb.ResizeRequest{Handle: handle, Cols: cols, Rows: rows})
	return err
}

// Kill sends signal to the child; 0 means SIGKILL.
func (c *Client) Kill(ctx context.Context, handle, signal int32) error {
	_, err := c.pty.Kill(ctx, &pb.KillRequest{Handle: handle, Signal: signal})
	return err
}

func (c *Client) Status(ctx context.Context, handle int32) (*pb.SessionStatus, error) {
	return c.pty.Status(ctx, &pb.HandleRequest{Handle: handle})
}

// Release closes the session behind handle on the server.
func (c *Client) Release(ctx context.Context, handle int32) error {
	_, err := c.pty.Close(ctx, &pb.HandleRequest{Handle: handle})
	return err
}

func (c *Client) List(ctx context.Context) ([]*pb.SessionStatus, error) {
	resp, err := c.pty.List(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

func (c *Client) Ping(ctx context.Context, message string) (string, error) {
	resp, err := c.system.Ping(ctx, &pb.PingRequest{Message: message})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) Version(ctx context.Context) (*pb.VersionResponse, error) {
	return c.system.Version(ctx, &pb.Empty{})
}

func (c *Client) Recent(ctx context.Context, limit int32) ([]*pb.JournalEntry, error) {
	resp, err := c.journal.Recent(ctx, &pb.RecentRequest{Limit: limit})
	if err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

func (c *Client) Entry(ctx context.Context, id string) (*pb.JournalEntry, error) {
	return c.journal.Get(ctx, &pb.GetEntryRequest{Id: id})
}
