// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: tenderagent.proto

package agentv1

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
	AgentGraph_Run_FullMethodName = "/tenderagent.v1.AgentGraph/Run"
)

// AgentGraphClient is the client API for AgentGraph service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AgentGraph is the tender analysis agent sidecar. One Run call executes
// one conversational turn and streams step updates until the turn
// completes, interrupts for human input, or fails.
type AgentGraphClient interface {
	Run(ctx context.Context, in *RunRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[StepUpdate], error)
}

type agentGraphClient struct {
	cc grpc.ClientConnInterface
}

func NewAgentGraphClient(cc grpc.ClientConnInterface) AgentGraphClient {
	return &agentGraphClient{cc}
}

func (c *agentGraphClient) Run(ctx context.Context, in *RunRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[StepUpdate], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &AgentGraph_ServiceDesc.Streams[0], AgentGraph_Run_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[RunRequest, StepUpdate]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AgentGraph_RunClient = grpc.ServerStreamingClient[StepUpdate]

// AgentGraphServer is the server API for AgentGraph service.
// All implementations must embed UnimplementedAgentGraphServer
// for forward compatibility.
//
// AgentGraph is the tender analysis agent sidecar. One Run call executes
// one conversational turn and streams step updates until the turn
// completes, interrupts for human input, or fails.
type AgentGraphServer interface {
	Run(*RunRequest, grpc.ServerStreamingServer[StepUpdate]) error
	mustEmbedUnimplementedAgentGraphServer()
}

// UnimplementedAgentGraphServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAgentGraphServer struct{}

func (UnimplementedAgentGraphServer) Run(*RunRequest, grpc.ServerStreamingServer[StepUpdate]) error {
	return status.Error(codes.Unimplemented, "method Run not implemented")
}
func (UnimplementedAgentGraphServer) mustEmbedUnimplementedAgentGraphServer() {}
func (UnimplementedAgentGraphServer) testEmbeddedByValue()                    {}

// UnsafeAgentGraphServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AgentGraphServer will
// result in compilation errors.
type UnsafeAgentGraphServer interface {
	mustEmbedUnimplementedAgentGraphServer()
}

func RegisterAgentGraphServer(s grpc.ServiceRegistrar, srv AgentGraphServer) {
	// If the following call panics, it indicates UnimplementedAgentGraphServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AgentGraph_ServiceDesc, srv)
}

func _AgentGraph_Run_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(RunRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AgentGraphServer).Run(m, &grpc.GenericServerStream[RunRequest, StepUpdate]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AgentGraph_RunServer = grpc.ServerStreamingServer[StepUpdate]

// AgentGraph_ServiceDesc is the grpc.ServiceDesc for AgentGraph service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AgentGraph_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tenderagent.v1.AgentGraph",
	HandlerType: (*AgentGraphServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Run",
			Handler:       _AgentGraph_Run_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "tenderagent.proto",
}
