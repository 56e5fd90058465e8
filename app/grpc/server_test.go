package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type grpcShowcaseService struct {
	listFn func(ctx context.Context) ([]*entity.PlanGroup, error)
	getFn  func(ctx context.Context, id string) (*entity.PlanGroup, error)
}

func (s *grpcShowcaseService) ListPlanGroups(ctx context.Context) ([]*entity.PlanGroup, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *grpcShowcaseService) GetPlanGroup(ctx context.Context, id string) (*entity.PlanGroup, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, service.ErrGroupNotFound
}

func TestListPlanGroups(t *testing.T) {
	srv := NewServer(&grpcShowcaseService{
		listFn: func(context.Context) ([]*entity.PlanGroup, error) {
			return []*entity.PlanGroup{
				{ID: "vultr", Plans: []entity.PlanEntry{{Title: "A", PriceLabel: "1"}}},
				{ID: "linode"},
			}, nil
		},
	})

	resp, err := srv.ListPlanGroups(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.GetValues()) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(resp.GetValues()))
	}
	if id := resp.GetValues()[1].GetStructValue().GetFields()["id"].GetStringValue(); id != "linode" {
		t.Fatalf("unexpected second group id %q", id)
	}
}

func TestListPlanGroupsInternalError(t *testing.T) {
	srv := NewServer(&grpcShowcaseService{
		listFn: func(context.Context) ([]*entity.PlanGroup, error) { return nil, errors.New("boom") },
	})

	_, err := srv.ListPlanGroups(context.Background(), &emptypb.Empty{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected codes.Internal, got %v", err)
	}
}

func TestGetPlanGroupCodes(t *testing.T) {
	srv := NewServer(&grpcShowcaseService{
		getFn: func(_ context.Context, id string) (*entity.PlanGroup, error) {
			switch id {
			case "vultr":
				return &entity.PlanGroup{ID: "vultr", Heading: "VULTR VPS"}, nil
			case "":
				return nil, service.ErrInvalidRequest
			default:
				return nil, service.ErrGroupNotFound
			}
		},
	})

	resp, err := srv.GetPlanGroup(context.Background(), wrapperspb.String("vultr"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.GetFields()["heading"].GetStringValue() != "VULTR VPS" {
		t.Fatalf("unexpected response: %v", resp)
	}

	if _, err := srv.GetPlanGroup(context.Background(), wrapperspb.String("missing")); status.Code(err) != codes.NotFound {
		t.Fatalf("expected codes.NotFound, got %v", err)
	}
	if _, err := srv.GetPlanGroup(context.Background(), wrapperspb.String("")); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected codes.InvalidArgument, got %v", err)
	}
}

func TestRegisterCatalogServiceServer(t *testing.T) {
	s := grpc.NewServer()
	RegisterCatalogServiceServer(s, NewServer(&grpcShowcaseService{}))

	info, ok := s.GetServiceInfo()[CatalogServiceName]
	if !ok {
		t.Fatalf("expected %s to be registered", CatalogServiceName)
	}
	if len(info.Methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(info.Methods))
	}
}

func TestHandlerRunsThroughInterceptor(t *testing.T) {
	srv := NewServer(&grpcShowcaseService{
		getFn: func(context.Context, string) (*entity.PlanGroup, error) { return &entity.PlanGroup{ID: "g"}, nil },
	})

	var seen string
	interceptor := func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		seen = info.FullMethod
		return handler(ctx, req)
	}
	dec := func(v interface{}) error {
		v.(*wrapperspb.StringValue).Value = "g"
		return nil
	}

	if _, err := getPlanGroupHandler(srv, context.Background(), dec, interceptor); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if seen != getPlanGroupFullName {
		t.Fatalf("expected %s, got %s", getPlanGroupFullName, seen)
	}
}
