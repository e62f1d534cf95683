package app

import (
	"context"
	"errors"

	ideav1 "github.com/dmehra2102/IdeaBoard/api/proto/v1"
	"github.com/dmehra2102/IdeaBoard/internal/board"
	"github.com/dmehra2102/IdeaBoard/internal/domain"
	"github.com/dmehra2102/IdeaBoard/pkg/auth"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type IdeaServiceServer struct {
	ideav1.UnimplementedIdeaServiceServer
	store  *board.Store
	logger *zap.Logger
	tracer trace.Tracer
}

func NewIdeaServiceServer(store *board.Store, logger *zap.Logger) *IdeaServiceServer {
	return &IdeaServiceServer{
		store:  store,
		logger: logger,
		tracer: otel.Tracer("idea-service"),
	}
}

func (s *IdeaServiceServer) ListIdeas(ctx context.Context, req *ideav1.ListIdeasRequest) (*ideav1.ListIdeasResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ListIdeas")
	defer span.End()

	// Anonymous callers get an empty board rather than an error.
	owner := auth.OwnerFromContext(ctx)
	span.SetAttributes(attribute.String("user.id", owner))

	ideas, err := s.store.List(ctx, owner)
	if err != nil {
		s.logger.Error("failed to list ideas",
			zap.Error(err),
			zap.String("user_id", owner),
		)
		return nil, status.Error(codes.Internal, "failed to list ideas")
	}

	protoIdeas := make([]*ideav1.Idea, len(ideas))
	for i, idea := range ideas {
		protoIdeas[i] = mapDomainToProto(idea)
	}

	return &ideav1.ListIdeasResponse{Ideas: protoIdeas}, nil
}

func (s *IdeaServiceServer) CreateIdea(ctx context.Context, req *ideav1.CreateIdeaRequest) (*ideav1.CreateIdeaResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CreateIdea")
	defer span.End()

	userCtx, err := auth.UserContextFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	span.SetAttributes(attribute.String("user.id", userCtx.UserID))

	stage, err := domain.ParseStage(req.Stage)
	if err != nil {
		return nil, mapDomainError(err)
	}

	idea, err := s.store.Create(ctx, userCtx.UserID, req.Title, req.Description, stage)
	if err != nil {
		return nil, s.failure("create idea", err, zap.String("user_id", userCtx.UserID))
	}

	s.logger.Info("idea created",
		zap.String("idea_id", idea.ID),
		zap.String("user_id", userCtx.UserID),
		zap.String("stage", string(idea.Stage)),
	)

	return &ideav1.CreateIdeaResponse{Idea: mapDomainToProto(idea)}, nil
}

func (s *IdeaServiceServer) UpdateIdea(ctx context.Context, req *ideav1.UpdateIdeaRequest) (*ideav1.UpdateIdeaResponse, error) {
	ctx, span := s.tracer.Start(ctx, "UpdateIdea")
	defer span.End()

	userCtx, err := auth.UserContextFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	span.SetAttributes(attribute.String("idea.id", req.Id))

	idea, err := s.store.Rename(ctx, userCtx.UserID, req.Id, req.Title, req.Description)
	if err != nil {
		return nil, s.failure("update idea", err, zap.String("idea_id", req.Id))
	}

	s.logger.Info("idea updated",
		zap.String("idea_id", req.Id),
		zap.String("user_id", userCtx.UserID),
	)

	return &ideav1.UpdateIdeaResponse{Idea: mapDomainToProto(idea)}, nil
}

func (s *IdeaServiceServer) MoveIdea(ctx context.Context, req *ideav1.MoveIdeaRequest) (*ideav1.MoveIdeaResponse, error) {
	ctx, span := s.tracer.Start(ctx, "MoveIdea")
	defer span.End()

	userCtx, err := auth.UserContextFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	span.SetAttributes(
		attribute.String("idea.id", req.Id),
		attribute.String("stage", req.Stage),
	)

	if req.Stage == "" {
		return nil, status.Error(codes.InvalidArgument, "target stage is required")
	}
	stage, err := domain.ParseStage(req.Stage)
	if err != nil {
		return nil, mapDomainError(err)
	}

	idea, err := s.store.MoveToStage(ctx, userCtx.UserID, req.Id, stage, int(req.Position))
	if err != nil {
		return nil, s.failure("move idea", err, zap.String("idea_id", req.Id))
	}

	s.logger.Info("idea moved",
		zap.String("idea_id", req.Id),
		zap.String("user_id", userCtx.UserID),
		zap.String("stage", string(idea.Stage)),
		zap.Int("position", idea.Position),
	)

	return &ideav1.MoveIdeaResponse{Idea: mapDomainToProto(idea)}, nil
}

func (s *IdeaServiceServer) ReorderIdea(ctx context.Context, req *ideav1.ReorderIdeaRequest) (*ideav1.ReorderIdeaResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ReorderIdea")
	defer span.End()

	userCtx, err := auth.UserContextFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	span.SetAttributes(attribute.String("idea.id", req.Id))

	idea, err := s.store.Reorder(ctx, userCtx.UserID, req.Id, int(req.Position))
	if err != nil {
		return nil, s.failure("reorder idea", err, zap.String("idea_id", req.Id))
	}

	return &ideav1.ReorderIdeaResponse{Idea: mapDomainToProto(idea)}, nil
}

func (s *IdeaServiceServer) DeleteIdea(ctx context.Context, req *ideav1.DeleteIdeaRequest) (*ideav1.DeleteIdeaResponse, error) {
	ctx, span := s.tracer.Start(ctx, "DeleteIdea")
	defer span.End()

	userCtx, err := auth.UserContextFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	span.SetAttributes(attribute.String("idea.id", req.Id))

	if err := s.store.Delete(ctx, userCtx.UserID, req.Id); err != nil {
		return nil, s.failure("delete idea", err, zap.String("idea_id", req.Id))
	}

	s.logger.Info("idea deleted",
		zap.String("idea_id", req.Id),
		zap.String("user_id", userCtx.UserID),
	)

	return &ideav1.DeleteIdeaResponse{Success: true}, nil
}

func (s *IdeaServiceServer) AuditBoard(ctx context.Context, req *ideav1.AuditBoardRequest) (*ideav1.AuditBoardResponse, error) {
	ctx, span := s.tracer.Start(ctx, "AuditBoard")
	defer span.End()

	userCtx, err := auth.UserContextFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}

	violations, err := s.store.Audit(ctx, userCtx.UserID)
	if err != nil {
		return nil, s.failure("audit board", err, zap.String("user_id", userCtx.UserID))
	}

	resp := &ideav1.AuditBoardResponse{Violations: make([]*ideav1.StageViolation, len(violations))}
	for i, v := range violations {
		positions := make([]int32, len(v.Positions))
		for j, p := range v.Positions {
			positions[j] = int32(p)
		}
		resp.Violations[i] = &ideav1.StageViolation{
			Stage:     string(v.Stage),
			Positions: positions,
			Reason:    v.Err.Error(),
		}
	}

	return resp, nil
}

func (s *IdeaServiceServer) CompactBoard(ctx context.Context, req *ideav1.CompactBoardRequest) (*ideav1.CompactBoardResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CompactBoard")
	defer span.End()

	userCtx, err := auth.UserContextFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}

	renumbered, err := s.store.Compact(ctx, userCtx.UserID)
	if err != nil {
		return nil, s.failure("compact board", err, zap.String("user_id", userCtx.UserID))
	}

	return &ideav1.CompactBoardResponse{Renumbered: int32(renumbered)}, nil
}

// failure maps err to a status error, logging anything that is not the
// caller's fault.
func (s *IdeaServiceServer) failure(action string, err error, fields ...zap.Field) error {
	st := mapDomainError(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error("failed to "+action, append(fields, zap.Error(err))...)
	}
	return st
}

func mapDomainToProto(idea *domain.Idea) *ideav1.Idea {
	return &ideav1.Idea{
		Id:          idea.ID,
		OwnerId:     idea.OwnerID,
		Title:       idea.Title,
		Description: idea.Description,
		Stage:       string(idea.Stage),
		Position:    int32(idea.Position),
		CreatedAt:   timestamppb.New(idea.CreatedAt),
		UpdatedAt:   timestamppb.New(idea.UpdatedAt),
	}
}

func mapDomainError(err error) error {
	switch {
	case domain.IsValidationError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrIdeaNotFound):
		return status.Error(codes.NotFound, "idea not found")
	case errors.Is(err, domain.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, domain.ErrPositionClash):
		return status.Error(codes.Aborted, "concurrent board update detected, please retry")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
