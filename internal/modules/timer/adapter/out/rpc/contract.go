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
	PluginMapKey           = "learner"
	serviceName            = "tempo.learner.v1.Learner"
	jsonCodecName          = "json"
	methodGetMetadata      = "/" + serviceName + "/GetMetadata"
	methodLearnFromSession = "/" + serviceName + "/LearnFromSession"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "TEMPO_PLUGIN",
	MagicCookieValue: "tempo-learner",
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

type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// SessionSnapshot is the session representation exchanged with learner
// plugins.
type SessionSnapshot struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	TaskID            string `json:"task_id"`
	Type              string `json:"type"`
	StartedAt         string `json:"started_at"`
	EndedAt           string `json:"ended_at"`
	TotalPauseSeconds int    `json:"total_pause_seconds"`
	PauseCount        int    `json:"pause_count"`
	DurationMin       int    `json:"duration_min"`
	WasCompleted      bool   `json:"was_completed"`
	Notes             string `json:"notes"`
}

type LearnResponse struct {
	Accepted bool `json:"accepted"`
}

type LearnerServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	LearnFromSession(ctx context.Context, in *SessionSnapshot) (*LearnResponse, error)
}

type LearnerClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	LearnFromSession(ctx context.Context, in *SessionSnapshot) (*LearnResponse, error)
}

type learnerClient struct {
	conn *grpc.ClientConn
}

func NewLearnerClient(conn *grpc.ClientConn) LearnerClient {
	return &learnerClient{conn: conn}
}

func (c *learnerClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *learnerClient) LearnFromSession(ctx context.Context, in *SessionSnapshot) (*LearnResponse, error) {
	out := &LearnResponse{}
	if err := c.conn.Invoke(ctx, methodLearnFromSession, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterLearnerServer(server grpc.ServiceRegistrar, impl LearnerServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*LearnerServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "LearnFromSession",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &SessionSnapshot{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.LearnFromSession(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodLearnFromSession}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*SessionSnapshot)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.LearnFromSession(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/learner-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl LearnerServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterLearnerServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewLearnerClient(conn), nil
}

func PluginMap(impl LearnerServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
