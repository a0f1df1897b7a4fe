package grpcrsa

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls a remote Primitive service. Payloads follow the service
// contract: octet strings of exactly k octets for the remote key.
type Client struct {
	cc     *grpc.ClientConn
	client PrimitiveClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewPrimitiveClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Encrypt applies RSAEP remotely to a k-octet message.
func (c *Client) Encrypt(message []byte) ([]byte, error) {
	return c.call("RSAEP", "message", c.client.Encrypt, message)
}

// Decrypt applies RSADP remotely to a k-octet ciphertext.
func (c *Client) Decrypt(ciphertext []byte) ([]byte, error) {
	return c.call("RSADP", "ciphertext", c.client.Decrypt, ciphertext)
}

// Sign applies RSASP1 remotely to a k-octet message.
func (c *Client) Sign(message []byte) ([]byte, error) {
	return c.call("RSASP1", "message", c.client.Sign, message)
}

// Recover applies RSAVP1 remotely to a k-octet signature.
func (c *Client) Recover(signature []byte) ([]byte, error) {
	return c.call("RSAVP1", "signature", c.client.Recover, signature)
}

// PublicKey fetches the remote public key (PKCS #1 DER over the wire).
func (c *Client) PublicKey() (*rsa.PublicKey, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.PublicKey(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	return x509.ParsePKCS1PublicKey(reply.GetValue())
}

type unaryCall func(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)

func (c *Client) call(op, representative string, fn unaryCall, payload []byte) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := fn(ctx, wrapperspb.Bytes(payload))
	if err != nil {
		return nil, mapRPC(op, representative, err)
	}
	return reply.GetValue(), nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
