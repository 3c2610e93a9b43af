package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey   = "blocker"
	serviceName    = "focusflow.blocker.v1.Blocker"
	jsonCodecName  = "json"
	methodStatus   = "/" + serviceName + "/Status"
	methodDeliver  = "/" + serviceName + "/Deliver"
	methodNavigate = "/" + serviceName + "/Navigate"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "FOCUSFLOW_BLOCKER",
	MagicCookieValue: "focusflow",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type RuleInfo struct {
	ID     int    `json:"id"`
	Domain string `json:"domain"`
}

type TabInfo struct {
	ID      int    `json:"id"`
	URL     string `json:"url"`
	Reloads int    `json:"reloads"`
}

type StatusResponse struct {
	Active    bool       `json:"active"`
	SessionID string     `json:"session_id"`
	Rules     []RuleInfo `json:"rules"`
	Tabs      []TabInfo  `json:"tabs"`
}

// DeliverRequest carries one extension message in its JSON wire form.
type DeliverRequest struct {
	MessageJSON string `json:"message_json"`
}

type NavigateRequest struct {
	URL string `json:"url"`
}

type NavigateResponse struct {
	URL      string `json:"url"`
	Host     string `json:"host"`
	Blocked  bool   `json:"blocked"`
	RuleID   int    `json:"rule_id"`
	Reported bool   `json:"reported"`
}

type BlockerServer interface {
	Status(ctx context.Context, in *Empty) (*StatusResponse, error)
	Deliver(ctx context.Context, in *DeliverRequest) (*Empty, error)
	Navigate(ctx context.Context, in *NavigateRequest) (*NavigateResponse, error)
}

type BlockerClient interface {
	Status(ctx context.Context) (*StatusResponse, error)
	Deliver(ctx context.Context, in *DeliverRequest) error
	Navigate(ctx context.Context, in *NavigateRequest) (*NavigateResponse, error)
}

type blockerClient struct {
	conn *grpc.ClientConn
}

func NewBlockerClient(conn *grpc.ClientConn) BlockerClient {
	return &blockerClient{conn: conn}
}

func (c *blockerClient) Status(ctx context.Context) (*StatusResponse, error) {
	out := &StatusResponse{}
	if err := c.conn.Invoke(ctx, methodStatus, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *blockerClient) Deliver(ctx context.Context, in *DeliverRequest) error {
	return c.conn.Invoke(ctx, methodDeliver, in, &Empty{}, grpc.CallContentSubtype(jsonCodecName))
}

func (c *blockerClient) Navigate(ctx context.Context, in *NavigateRequest) (*NavigateResponse, error) {
	out := &NavigateResponse{}
	if err := c.conn.Invoke(ctx, methodNavigate, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

// unary builds a method handler that decodes Req and calls fn.
func unary[Req any, Resp any](fullMethod string, fn func(context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return fn(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*Req)
			if !ok {
				return nil, fmt.Errorf("invalid request type")
			}
			return fn(ctx, typed)
		}
		return interceptor(ctx, in, info, handler)
	}
}

func RegisterBlockerServer(server grpc.ServiceRegistrar, impl BlockerServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*BlockerServer)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "Status", Handler: unary(methodStatus, impl.Status)},
			{MethodName: "Deliver", Handler: unary(methodDeliver, impl.Deliver)},
			{MethodName: "Navigate", Handler: unary(methodNavigate, impl.Navigate)},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "blocker-rpc-v1",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl BlockerServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterBlockerServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewBlockerClient(conn), nil
}

func PluginMap(impl BlockerServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
