package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	CatalogServiceName      = "vpsshowcase.CatalogService"
	listPlanGroupsFullName  = "/" + CatalogServiceName + "/ListPlanGroups"
	getPlanGroupFullName    = "/" + CatalogServiceName + "/GetPlanGroup"
	catalogServiceProtoFile = "vpsshowcase/catalog.proto"
)

// CatalogServiceServer is the read-only catalog API. Messages are protobuf well-known
// types so no generated code is required.
type CatalogServiceServer interface {
	ListPlanGroups(ctx context.Context, req *emptypb.Empty) (*structpb.ListValue, error)
	GetPlanGroup(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
}

var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListPlanGroups", Handler: listPlanGroupsHandler},
		{MethodName: "GetPlanGroup", Handler: getPlanGroupHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: catalogServiceProtoFile,
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

func listPlanGroupsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListPlanGroups(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listPlanGroupsFullName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).ListPlanGroups(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getPlanGroupHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetPlanGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getPlanGroupFullName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).GetPlanGroup(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}
