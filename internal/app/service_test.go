package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	ideav1 "github.com/dmehra2102/IdeaBoard/api/proto/v1"
	"github.com/dmehra2102/IdeaBoard/internal/board"
	"github.com/dmehra2102/IdeaBoard/internal/domain"
	"github.com/dmehra2102/IdeaBoard/internal/infrastructure/memory"
	"github.com/dmehra2102/IdeaBoard/internal/interceptors"
	"github.com/dmehra2102/IdeaBoard/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

const testSecret = "service-secret"

func newTestClient(t *testing.T, strict bool) ideav1.IdeaServiceClient {
	t.Helper()
	return ideav1.NewIdeaServiceClient(newTestConn(t, strict))
}

// newTestConn serves the board over bufconn with the production interceptors
// that matter here and server reflection enabled.
func newTestConn(t *testing.T, strict bool) *grpc.ClientConn {
	t.Helper()

	logger := zap.NewNop()
	store := board.NewStore(memory.NewRepository(), logger, board.Options{StrictDensity: strict})

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.RecoveryInterceptor(logger),
		interceptors.AuthInterceptor(testSecret),
	))
	ideav1.RegisterIdeaServiceServer(srv, NewIdeaServiceServer(store, logger))
	reflection.Register(srv)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func as(t *testing.T, userID string) context.Context {
	t.Helper()
	token, err := auth.IssueToken(testSecret, userID, time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func create(t *testing.T, client ideav1.IdeaServiceClient, ctx context.Context, title, stage string) *ideav1.Idea {
	t.Helper()
	resp, err := client.CreateIdea(ctx, &ideav1.CreateIdeaRequest{Title: title, Stage: stage})
	require.NoError(t, err)
	return resp.Idea
}

func snapshot(t *testing.T, client ideav1.IdeaServiceClient, ctx context.Context) map[string]string {
	t.Helper()
	resp, err := client.ListIdeas(ctx, &ideav1.ListIdeasRequest{})
	require.NoError(t, err)

	out := make(map[string]string, len(resp.Ideas))
	for _, idea := range resp.Ideas {
		out[idea.Title] = fmt.Sprintf("%s/%d", idea.Stage, idea.Position)
	}
	return out
}

func TestIdeaService_EndToEnd(t *testing.T) {
	client := newTestClient(t, true)
	ctx := as(t, "u1")

	a := create(t, client, ctx, "A", "")
	assert.Equal(t, "Idea", a.Stage, "stage defaults to the first column")
	assert.Equal(t, int32(0), a.Position)
	assert.Equal(t, "u1", a.OwnerId)
	assert.NotNil(t, a.CreatedAt)

	b := create(t, client, ctx, "B", "Idea")
	assert.Equal(t, int32(1), b.Position)
	c := create(t, client, ctx, "C", "Idea")
	create(t, client, ctx, "X", "Plan")

	reordered, err := client.ReorderIdea(ctx, &ideav1.ReorderIdeaRequest{Id: c.Id, Position: 0})
	require.NoError(t, err)
	assert.Equal(t, int32(0), reordered.Idea.Position)
	assert.Equal(t, map[string]string{
		"A": "Idea/1", "B": "Idea/2", "C": "Idea/0", "X": "Plan/0",
	}, snapshot(t, client, ctx))

	moved, err := client.MoveIdea(ctx, &ideav1.MoveIdeaRequest{Id: a.Id, Stage: "Plan", Position: 0})
	require.NoError(t, err)
	assert.Equal(t, "Plan", moved.Idea.Stage)
	assert.Equal(t, map[string]string{
		"A": "Plan/0", "B": "Idea/1", "C": "Idea/0", "X": "Plan/1",
	}, snapshot(t, client, ctx))

	updated, err := client.UpdateIdea(ctx, &ideav1.UpdateIdeaRequest{Id: b.Id, Title: "B2", Description: "notes"})
	require.NoError(t, err)
	assert.Equal(t, "B2", updated.Idea.Title)
	assert.Equal(t, "notes", updated.Idea.Description)

	deleted, err := client.DeleteIdea(ctx, &ideav1.DeleteIdeaRequest{Id: c.Id})
	require.NoError(t, err)
	assert.True(t, deleted.Success)
	assert.Equal(t, map[string]string{
		"A": "Plan/0", "B2": "Idea/0", "X": "Plan/1",
	}, snapshot(t, client, ctx))

	audit, err := client.AuditBoard(ctx, &ideav1.AuditBoardRequest{})
	require.NoError(t, err)
	assert.Empty(t, audit.Violations)

	compacted, err := client.CompactBoard(ctx, &ideav1.CompactBoardRequest{})
	require.NoError(t, err)
	assert.Zero(t, compacted.Renumbered)
}

func TestIdeaService_AuditAndCompactGaps(t *testing.T) {
	client := newTestClient(t, false)
	ctx := as(t, "u1")

	a := create(t, client, ctx, "A", "Idea")
	create(t, client, ctx, "B", "Idea")
	create(t, client, ctx, "C", "Idea")

	_, err := client.DeleteIdea(ctx, &ideav1.DeleteIdeaRequest{Id: a.Id})
	require.NoError(t, err)

	audit, err := client.AuditBoard(ctx, &ideav1.AuditBoardRequest{})
	require.NoError(t, err)
	require.Len(t, audit.Violations, 1)
	assert.Equal(t, "Idea", audit.Violations[0].Stage)
	assert.Equal(t, []int32{1, 2}, audit.Violations[0].Positions)
	assert.NotEmpty(t, audit.Violations[0].Reason)

	compacted, err := client.CompactBoard(ctx, &ideav1.CompactBoardRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), compacted.Renumbered)
	assert.Equal(t, map[string]string{"B": "Idea/0", "C": "Idea/1"}, snapshot(t, client, ctx))
}

func TestIdeaService_Anonymous(t *testing.T) {
	client := newTestClient(t, true)
	create(t, client, as(t, "u1"), "A", "")

	anon := context.Background()
	resp, err := client.ListIdeas(anon, &ideav1.ListIdeasRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Ideas)

	_, err = client.CreateIdea(anon, &ideav1.CreateIdeaRequest{Title: "x"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.ReorderIdea(anon, &ideav1.ReorderIdeaRequest{Id: "x"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.AuditBoard(anon, &ideav1.AuditBoardRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	bad := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer forged")
	_, err = client.ListIdeas(bad, &ideav1.ListIdeasRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err), "a bad token is rejected, not treated as anonymous")
}

func TestIdeaService_ErrorCodes(t *testing.T) {
	client := newTestClient(t, true)
	ctx := as(t, "u1")
	a := create(t, client, ctx, "A", "")
	other := as(t, "u2")

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"empty title", func() error {
			_, err := client.CreateIdea(ctx, &ideav1.CreateIdeaRequest{Title: " "})
			return err
		}, codes.InvalidArgument},
		{"unknown stage", func() error {
			_, err := client.CreateIdea(ctx, &ideav1.CreateIdeaRequest{Title: "x", Stage: "Backlog"})
			return err
		}, codes.InvalidArgument},
		{"move without stage", func() error {
			_, err := client.MoveIdea(ctx, &ideav1.MoveIdeaRequest{Id: a.Id})
			return err
		}, codes.InvalidArgument},
		{"negative position", func() error {
			_, err := client.ReorderIdea(ctx, &ideav1.ReorderIdeaRequest{Id: a.Id, Position: -1})
			return err
		}, codes.InvalidArgument},
		{"missing idea", func() error {
			_, err := client.DeleteIdea(ctx, &ideav1.DeleteIdeaRequest{Id: "nope"})
			return err
		}, codes.NotFound},
		{"foreign idea", func() error {
			_, err := client.UpdateIdea(other, &ideav1.UpdateIdeaRequest{Id: a.Id, Title: "mine"})
			return err
		}, codes.NotFound},
		{"foreign move", func() error {
			_, err := client.MoveIdea(other, &ideav1.MoveIdeaRequest{Id: a.Id, Stage: "Plan"})
			return err
		}, codes.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(tt.call()))
		})
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{domain.ErrTitleTooLong, codes.InvalidArgument},
		{domain.ErrInvalidPosition, codes.InvalidArgument},
		{domain.ErrIdeaNotFound, codes.NotFound},
		{domain.ErrUnauthenticated, codes.Unauthenticated},
		{domain.ErrPositionClash, codes.Aborted},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{context.Canceled, codes.Canceled},
		{errors.New("connection reset"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(mapDomainError(tt.err)))
		})
	}
}

func TestIdeaService_SpeaksProtobuf(t *testing.T) {
	conn := newTestConn(t, true)
	ctx := as(t, "u1")

	// No call options: the default proto codec must carry every message.
	created := new(ideav1.CreateIdeaResponse)
	require.NoError(t, conn.Invoke(ctx, ideav1.IdeaService_CreateIdea_FullMethodName,
		&ideav1.CreateIdeaRequest{Title: "wire", Stage: "Plan"}, created))
	assert.Equal(t, "wire", created.GetIdea().GetTitle())
	assert.Equal(t, "Plan", created.GetIdea().GetStage())

	listed := new(ideav1.ListIdeasResponse)
	require.NoError(t, conn.Invoke(ctx, ideav1.IdeaService_ListIdeas_FullMethodName, &ideav1.ListIdeasRequest{}, listed))
	require.Len(t, listed.GetIdeas(), 1)
	assert.Equal(t, created.GetIdea().GetId(), listed.GetIdeas()[0].GetId())

	// The raw bytes decode as the schema says.
	raw, err := proto.Marshal(listed)
	require.NoError(t, err)
	var decoded ideav1.ListIdeasResponse
	require.NoError(t, proto.Unmarshal(raw, &decoded))
	assert.True(t, proto.Equal(listed, &decoded))
}

func TestIdeaService_Reflection(t *testing.T) {
	conn := newTestConn(t, true)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)
	defer func() { _ = stream.CloseSend() }()

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: ideav1.IdeaService_ServiceDesc.ServiceName,
		},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)

	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.NotEmpty(t, files)

	var fd descriptorpb.FileDescriptorProto
	require.NoError(t, proto.Unmarshal(files[0], &fd))
	assert.Equal(t, "ideaboard.v1", fd.GetPackage())
	require.Len(t, fd.GetService(), 1)

	var methods []string
	for _, m := range fd.GetService()[0].GetMethod() {
		methods = append(methods, m.GetName())
	}
	assert.ElementsMatch(t, []string{
		"ListIdeas", "CreateIdea", "UpdateIdea", "MoveIdea",
		"ReorderIdea", "DeleteIdea", "AuditBoard", "CompactBoard",
	}, methods)
}
