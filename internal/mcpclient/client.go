package mcpclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"

	"place-forecast/pkg/logger"
)

// ToolSession is one established connection to a remote MCP endpoint. It is
// scoped to a single run: open it, make one tool call, close it.
type ToolSession interface {
	ListTools(ctx context.Context) ([]string, error)
	FindTool(ctx context.Context, want string) (string, error)
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)
	Close() error
}

// Dialer opens tool sessions. The orchestrator depends on this interface so
// tests can substitute fake sessions.
type Dialer interface {
	Connect(ctx context.Context, endpoint string) (ToolSession, error)
}

type Client struct {
	name    string
	version string
	timeout time.Duration
	l       *logger.Logger
}

func New(name, version string, timeout time.Duration, l *logger.Logger) *Client {
	return &Client{
		name:    name,
		version: version,
		timeout: timeout,
		l:       l,
	}
}

// Connect opens a streamable HTTP session to the endpoint and performs the
// MCP initialize handshake. Any failure on this path is a *ConnectionError.
func (c *Client) Connect(ctx context.Context, endpoint string) (ToolSession, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &ConnectionError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("unsupported URI scheme %q: use http:// or https://", u.Scheme),
		}
	}

	mc, err := client.NewStreamableHttpClient(endpoint, transport.WithHTTPTimeout(c.timeout))
	if err != nil {
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}

	if err := mc.Start(ctx); err != nil {
		_ = mc.Close()
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    c.name,
		Version: c.version,
	}

	if _, err := mc.Initialize(ctx, initReq); err != nil {
		_ = mc.Close()
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}

	c.l.Debug("mcp session established", map[string]any{"endpoint": endpoint})

	return &session{endpoint: endpoint, mc: mc, l: c.l}, nil
}

type session struct {
	endpoint string
	mc       *client.Client
	l        *logger.Logger

	closeOnce sync.Once
	closeErr  error
}

func (s *session) ListTools(ctx context.Context) ([]string, error) {
	res, err := s.mc.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, &TransportError{Endpoint: s.endpoint, Err: err}
	}

	names := make([]string, 0, len(res.Tools))
	for _, t := range res.Tools {
		names = append(names, t.Name)
	}

	s.l.Debug("listed remote tools", map[string]any{
		"endpoint": s.endpoint,
		"tools":    names,
	})

	return names, nil
}

// FindTool resolves the wanted tool by substring match over the remote tool
// list, first listed match wins. Remotes may namespace tool names, so an
// exact match is not required.
func (s *session) FindTool(ctx context.Context, want string) (string, error) {
	names, err := s.ListTools(ctx)
	if err != nil {
		return "", err
	}

	for _, name := range names {
		if strings.Contains(name, want) {
			return name, nil
		}
	}

	return "", &ToolNotFoundError{Endpoint: s.endpoint, Tool: want, Available: names}
}

func (s *session) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	s.l.Info("calling remote tool", map[string]any{
		"endpoint": s.endpoint,
		"tool":     name,
		"args":     args,
	})

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := s.mc.CallTool(ctx, req)
	if err != nil {
		return "", &TransportError{Endpoint: s.endpoint, Tool: name, Err: err}
	}

	text := textContent(res.Content)
	if res.IsError {
		return "", &RemoteInvocationError{Endpoint: s.endpoint, Tool: name, Message: text}
	}

	return text, nil
}

func (s *session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.mc.Close()
	})
	return s.closeErr
}

// textContent joins all text items of a tool result. Non-text content is
// skipped.
func textContent(content []mcp.Content) string {
	var parts []string
	for _, item := range content {
		if tc, ok := mcp.AsTextContent(item); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
