package grpcrsa

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"math/big"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/nfgallimore/rsa/keys"
	"github.com/nfgallimore/rsa/pkcs1"
)

// Server exposes the raw RSA primitives over a single private key.
//
// Every request and reply payload is an octet string of exactly k octets,
// where k is the octet length of the key's modulus. Inputs travel through
// OS2IP and results through I2OSP, so the wire surface carries no numeric
// ambiguity.
type Server struct {
	UnimplementedPrimitiveServer
	Key *rsa.PrivateKey

	// Primitives may carry an injected modular exponentiation; the zero
	// value uses the default.
	Primitives pkcs1.Primitives
}

func (s *Server) Encrypt(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	rep, err := s.decodeInput(in)
	if err != nil {
		return nil, err
	}
	c, err := s.Primitives.RSAEP(keys.FromPublic(&s.Key.PublicKey), rep)
	if err != nil {
		return nil, mapErr(err)
	}
	return s.encodeOutput(c)
}

func (s *Server) Decrypt(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	rep, err := s.decodeInput(in)
	if err != nil {
		return nil, err
	}
	m, err := s.Primitives.RSADP(keys.FromPrivate(s.Key), rep)
	if err != nil {
		return nil, mapErr(err)
	}
	return s.encodeOutput(m)
}

func (s *Server) Sign(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	rep, err := s.decodeInput(in)
	if err != nil {
		return nil, err
	}
	sig, err := s.Primitives.RSASP1(keys.FromPrivate(s.Key), rep)
	if err != nil {
		return nil, mapErr(err)
	}
	return s.encodeOutput(sig)
}

func (s *Server) Recover(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	rep, err := s.decodeInput(in)
	if err != nil {
		return nil, err
	}
	m, err := s.Primitives.RSAVP1(keys.FromPublic(&s.Key.PublicKey), rep)
	if err != nil {
		return nil, mapErr(err)
	}
	return s.encodeOutput(m)
}

func (s *Server) PublicKey(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Key == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing key")
	}
	return wrapperspb.Bytes(x509.MarshalPKCS1PublicKey(&s.Key.PublicKey)), nil
}

func (s *Server) decodeInput(in *wrapperspb.BytesValue) (*big.Int, error) {
	if s == nil || s.Key == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing key")
	}
	b := in.GetValue()
	k := keys.Size(keys.FromPublic(&s.Key.PublicKey))
	if len(b) != k {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("payload must be %d octets, got %d", k, len(b)))
	}
	return pkcs1.OS2IP(b), nil
}

func (s *Server) encodeOutput(rep *big.Int) (*wrapperspb.BytesValue, error) {
	k := keys.Size(keys.FromPublic(&s.Key.PublicKey))
	out, err := pkcs1.I2OSP(rep, k)
	if err != nil {
		// Results are reduced mod n, so they always fit in k octets.
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.Bytes(out), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case pkcs1.IsOutOfRange(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case pkcs1.IsIntegerTooLarge(err):
		return status.Error(codes.OutOfRange, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
