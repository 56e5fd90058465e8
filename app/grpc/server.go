package grpc

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/mapper"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type showcaseService interface {
	ListPlanGroups(ctx context.Context) ([]*entity.PlanGroup, error)
	GetPlanGroup(ctx context.Context, id string) (*entity.PlanGroup, error)
}

type Server struct {
	showcaseService showcaseService
}

func NewServer(showcaseService showcaseService) *Server {
	return &Server{showcaseService: showcaseService}
}

func (s *Server) ListPlanGroups(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	l := loggerWithContext(ctx)

	items, err := s.showcaseService.ListPlanGroups(ctx)
	if err != nil {
		l.WithError(err).Error("List plan groups failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}

	resp, err := mapper.PlanGroupsToProto(items)
	if err != nil {
		l.WithError(err).Error("Encode plan groups failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return resp, nil
}

func (s *Server) GetPlanGroup(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	l := loggerWithContext(ctx)

	item, err := s.showcaseService.GetPlanGroup(ctx, req.GetValue())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return nil, status.Error(codes.InvalidArgument, "group id is required")
		case errors.Is(err, service.ErrGroupNotFound):
			return nil, status.Error(codes.NotFound, "plan group not found")
		default:
			l.WithError(err).Error("Get plan group failed")
			return nil, status.Error(codes.Internal, "internal server error")
		}
	}

	resp, err := mapper.PlanGroupToProto(item)
	if err != nil {
		l.WithError(err).Error("Encode plan group failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return resp, nil
}
