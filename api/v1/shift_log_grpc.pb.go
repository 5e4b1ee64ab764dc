// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: api/v1/shift_log.proto

package v1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ShiftLog_SubmitShift_FullMethodName        = "/shiftlog.v1.ShiftLog/SubmitShift"
	ShiftLog_ComputeSpoutStats_FullMethodName  = "/shiftlog.v1.ShiftLog/ComputeSpoutStats"
	ShiftLog_GetOutOfSpecSpouts_FullMethodName = "/shiftlog.v1.ShiftLog/GetOutOfSpecSpouts"
	ShiftLog_GetWorkbookStatus_FullMethodName  = "/shiftlog.v1.ShiftLog/GetWorkbookStatus"
)

// ShiftLogClient is the client API for ShiftLog service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ShiftLog records quality-control shift measurements and appends them
// to the shift workbook.
//
// Regenerate with:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	       api/v1/shift_log.proto
type ShiftLogClient interface {
	// SubmitShift validates a shift record and appends one row per spout
	// to the shift workbook.
	SubmitShift(ctx context.Context, in *SubmitShiftRequest, opts ...grpc.CallOption) (*SubmitShiftResponse, error)
	// ComputeSpoutStats returns the average and population standard
	// deviation for one spout's samples. Intended for incremental use
	// while the operator is still typing.
	ComputeSpoutStats(ctx context.Context, in *ComputeSpoutStatsRequest, opts ...grpc.CallOption) (*ComputeSpoutStatsResponse, error)
	// GetOutOfSpecSpouts returns the 1-based numbers of every spout with
	// at least one sample outside the tolerance window.
	GetOutOfSpecSpouts(ctx context.Context, in *GetOutOfSpecSpoutsRequest, opts ...grpc.CallOption) (*GetOutOfSpecSpoutsResponse, error)
	// GetWorkbookStatus reports the current data-row count of the
	// configured workbook.
	GetWorkbookStatus(ctx context.Context, in *GetWorkbookStatusRequest, opts ...grpc.CallOption) (*GetWorkbookStatusResponse, error)
}

type shiftLogClient struct {
	cc grpc.ClientConnInterface
}

func NewShiftLogClient(cc grpc.ClientConnInterface) ShiftLogClient {
	return &shiftLogClient{cc}
}

func (c *shiftLogClient) SubmitShift(ctx context.Context, in *SubmitShiftRequest, opts ...grpc.CallOption) (*SubmitShiftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitShiftResponse)
	err := c.cc.Invoke(ctx, ShiftLog_SubmitShift_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftLogClient) ComputeSpoutStats(ctx context.Context, in *ComputeSpoutStatsRequest, opts ...grpc.CallOption) (*ComputeSpoutStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComputeSpoutStatsResponse)
	err := c.cc.Invoke(ctx, ShiftLog_ComputeSpoutStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftLogClient) GetOutOfSpecSpouts(ctx context.Context, in *GetOutOfSpecSpoutsRequest, opts ...grpc.CallOption) (*GetOutOfSpecSpoutsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetOutOfSpecSpoutsResponse)
	err := c.cc.Invoke(ctx, ShiftLog_GetOutOfSpecSpouts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftLogClient) GetWorkbookStatus(ctx context.Context, in *GetWorkbookStatusRequest, opts ...grpc.CallOption) (*GetWorkbookStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetWorkbookStatusResponse)
	err := c.cc.Invoke(ctx, ShiftLog_GetWorkbookStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ShiftLogServer is the server API for ShiftLog service.
// All implementations must embed UnimplementedShiftLogServer
// for forward compatibility.
//
// ShiftLog records quality-control shift measurements and appends them
// to the shift workbook.
//
// Regenerate with:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	       api/v1/shift_log.proto
type ShiftLogServer interface {
	// SubmitShift validates a shift record and appends one row per spout
	// to the shift workbook.
	SubmitShift(context.Context, *SubmitShiftRequest) (*SubmitShiftResponse, error)
	// ComputeSpoutStats returns the average and population standard
	// deviation for one spout's samples. Intended for incremental use
	// while the operator is still typing.
	ComputeSpoutStats(context.Context, *ComputeSpoutStatsRequest) (*ComputeSpoutStatsResponse, error)
	// GetOutOfSpecSpouts returns the 1-based numbers of every spout with
	// at least one sample outside the tolerance window.
	GetOutOfSpecSpouts(context.Context, *GetOutOfSpecSpoutsRequest) (*GetOutOfSpecSpoutsResponse, error)
	// GetWorkbookStatus reports the current data-row count of the
	// configured workbook.
	GetWorkbookStatus(context.Context, *GetWorkbookStatusRequest) (*GetWorkbookStatusResponse, error)
	mustEmbedUnimplementedShiftLogServer()
}

// UnimplementedShiftLogServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedShiftLogServer struct{}

func (UnimplementedShiftLogServer) SubmitShift(context.Context, *SubmitShiftRequest) (*SubmitShiftResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitShift not implemented")
}
func (UnimplementedShiftLogServer) ComputeSpoutStats(context.Context, *ComputeSpoutStatsRequest) (*ComputeSpoutStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeSpoutStats not implemented")
}
func (UnimplementedShiftLogServer) GetOutOfSpecSpouts(context.Context, *GetOutOfSpecSpoutsRequest) (*GetOutOfSpecSpoutsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOutOfSpecSpouts not implemented")
}
func (UnimplementedShiftLogServer) GetWorkbookStatus(context.Context, *GetWorkbookStatusRequest) (*GetWorkbookStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWorkbookStatus not implemented")
}
func (UnimplementedShiftLogServer) mustEmbedUnimplementedShiftLogServer() {}
func (UnimplementedShiftLogServer) testEmbeddedByValue()                  {}

// UnsafeShiftLogServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ShiftLogServer will
// result in compilation errors.
type UnsafeShiftLogServer interface {
	mustEmbedUnimplementedShiftLogServer()
}

func RegisterShiftLogServer(s grpc.ServiceRegistrar, srv ShiftLogServer) {
	// If the following call pancis, it indicates UnimplementedShiftLogServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ShiftLog_ServiceDesc, srv)
}

func _ShiftLog_SubmitShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftLogServer).SubmitShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftLog_SubmitShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftLogServer).SubmitShift(ctx, req.(*SubmitShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftLog_ComputeSpoutStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeSpoutStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftLogServer).ComputeSpoutStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftLog_ComputeSpoutStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftLogServer).ComputeSpoutStats(ctx, req.(*ComputeSpoutStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftLog_GetOutOfSpecSpouts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetOutOfSpecSpoutsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftLogServer).GetOutOfSpecSpouts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftLog_GetOutOfSpecSpouts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftLogServer).GetOutOfSpecSpouts(ctx, req.(*GetOutOfSpecSpoutsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftLog_GetWorkbookStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetWorkbookStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftLogServer).GetWorkbookStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftLog_GetWorkbookStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftLogServer).GetWorkbookStatus(ctx, req.(*GetWorkbookStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ShiftLog_ServiceDesc is the grpc.ServiceDesc for ShiftLog service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ShiftLog_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shiftlog.v1.ShiftLog",
	HandlerType: (*ShiftLogServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitShift",
			Handler:    _ShiftLog_SubmitShift_Handler,
		},
		{
			MethodName: "ComputeSpoutStats",
			Handler:    _ShiftLog_ComputeSpoutStats_Handler,
		},
		{
			MethodName: "GetOutOfSpecSpouts",
			Handler:    _ShiftLog_GetOutOfSpecSpouts_Handler,
		},
		{
			MethodName: "GetWorkbookStatus",
			Handler:    _ShiftLog_GetWorkbookStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/v1/shift_log.proto",
}
