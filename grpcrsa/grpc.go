package grpcrsa

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// PrimitiveServer is the server API for the raw RSA primitive gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this package does
// not require a protoc/codegen toolchain.
//
// Every payload is an octet string of exactly k octets, where k is the
// server key's modulus length; PublicKey returns the PKCS #1 DER encoding
// of the server's public key.
//
// Proto definition: primitive.proto.
type PrimitiveServer interface {
	Encrypt(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	Decrypt(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	Sign(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	Recover(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	PublicKey(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error)
}

// UnimplementedPrimitiveServer can be embedded to have forward compatible implementations.
type UnimplementedPrimitiveServer struct{}

func (UnimplementedPrimitiveServer) Encrypt(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Encrypt not implemented")
}
func (UnimplementedPrimitiveServer) Decrypt(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Decrypt not implemented")
}
func (UnimplementedPrimitiveServer) Sign(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Sign not implemented")
}
func (UnimplementedPrimitiveServer) Recover(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Recover not implemented")
}
func (UnimplementedPrimitiveServer) PublicKey(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method PublicKey not implemented")
}

// RegisterPrimitiveServer registers the Primitive service on a gRPC server.
func RegisterPrimitiveServer(s grpc.ServiceRegistrar, srv PrimitiveServer) {
	s.RegisterService(&Primitive_ServiceDesc, srv)
}

// PrimitiveClient is the client API for the raw RSA primitive gRPC service.
type PrimitiveClient interface {
	Encrypt(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Decrypt(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Sign(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Recover(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	PublicKey(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type primitiveClient struct{ cc grpc.ClientConnInterface }

func NewPrimitiveClient(cc grpc.ClientConnInterface) PrimitiveClient { return &primitiveClient{cc: cc} }

func (c *primitiveClient) Encrypt(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/nfgallimore.rsa.grpcrsa.v1.Primitive/Encrypt", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *primitiveClient) Decrypt(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/nfgallimore.rsa.grpcrsa.v1.Primitive/Decrypt", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *primitiveClient) Sign(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/nfgallimore.rsa.grpcrsa.v1.Primitive/Sign", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *primitiveClient) Recover(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/nfgallimore.rsa.grpcrsa.v1.Primitive/Recover", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *primitiveClient) PublicKey(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/nfgallimore.rsa.grpcrsa.v1.Primitive/PublicKey", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Primitive_Encrypt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PrimitiveServer).Encrypt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nfgallimore.rsa.grpcrsa.v1.Primitive/Encrypt"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PrimitiveServer).Encrypt(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Primitive_Decrypt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PrimitiveServer).Decrypt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nfgallimore.rsa.grpcrsa.v1.Primitive/Decrypt"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PrimitiveServer).Decrypt(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Primitive_Sign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PrimitiveServer).Sign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nfgallimore.rsa.grpcrsa.v1.Primitive/Sign"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PrimitiveServer).Sign(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Primitive_Recover_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PrimitiveServer).Recover(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nfgallimore.rsa.grpcrsa.v1.Primitive/Recover"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PrimitiveServer).Recover(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Primitive_PublicKey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PrimitiveServer).PublicKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/nfgallimore.rsa.grpcrsa.v1.Primitive/PublicKey"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PrimitiveServer).PublicKey(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Primitive_ServiceDesc is the grpc.ServiceDesc for the Primitive service.
var Primitive_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "nfgallimore.rsa.grpcrsa.v1.Primitive",
	HandlerType: (*PrimitiveServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Encrypt", Handler: _Primitive_Encrypt_Handler},
		{MethodName: "Decrypt", Handler: _Primitive_Decrypt_Handler},
		{MethodName: "Sign", Handler: _Primitive_Sign_Handler},
		{MethodName: "Recover", Handler: _Primitive_Recover_Handler},
		{MethodName: "PublicKey", Handler: _Primitive_PublicKey_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "primitive.proto",
}
