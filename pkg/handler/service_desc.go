// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "missionanalytics.v1.AnalyticsService"

// AnalyticsServiceServer is the server API for the analytics service.
// Every message is a google.protobuf.Struct carrying the JSON form of the
// request and response types in this package.
type AnalyticsServiceServer interface {
	PutSnapshot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpsertProgress(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetActivitySeries(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetActiveUsers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLifecycle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRetentionCohorts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetMissionFunnel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RunReport(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RunDashboard(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(AnalyticsServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call unaryMethod) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AnalyticsServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(AnalyticsServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// AnalyticsServiceDesc is the grpc.ServiceDesc for the analytics service.
// Every message is a google.protobuf.Struct and no .proto file is registered
// for the service, so reflection lists it by name but cannot describe it.
var AnalyticsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AnalyticsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("PutSnapshot", AnalyticsServiceServer.PutSnapshot),
		unaryHandler("UpsertProgress", AnalyticsServiceServer.UpsertProgress),
		unaryHandler("GetActivitySeries", AnalyticsServiceServer.GetActivitySeries),
		unaryHandler("GetActiveUsers", AnalyticsServiceServer.GetActiveUsers),
		unaryHandler("GetLifecycle", AnalyticsServiceServer.GetLifecycle),
		unaryHandler("GetRetentionCohorts", AnalyticsServiceServer.GetRetentionCohorts),
		unaryHandler("GetMissionFunnel", AnalyticsServiceServer.GetMissionFunnel),
		unaryHandler("RunReport", AnalyticsServiceServer.RunReport),
		unaryHandler("RunDashboard", AnalyticsServiceServer.RunDashboard),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterAnalyticsServiceServer registers srv with the gRPC server.
func RegisterAnalyticsServiceServer(s grpc.ServiceRegistrar, srv AnalyticsServiceServer) {
	s.RegisterService(&AnalyticsServiceDesc, srv)
}
