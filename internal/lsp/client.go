package lsp

import (
	"context"
	"errors"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// ErrNoClient is returned when no language-server client is available
// to carry a notification.
var ErrNoClient = errors.New("no language server client available")

// Notifier sends one-way notifications to the language server. This is
// a fire-and-forget contract: a nil error means the message was handed
// to the transport, not that the server acted on it.
type Notifier interface {
	Notify(ctx context.Context, method string, params any) error
}

// Client is a Notifier backed by a jsonrpc2 connection owned by the
// host. The client lifecycle (spawn, initialize, shutdown) lives with
// the host; this wrapper only carries notifications.
type Client struct {
	conn   jsonrpc2.Conn
	logger *zap.Logger
}

// NewClient wraps an established connection.
func NewClient(conn jsonrpc2.Conn, logger *zap.Logger) (*Client, error) {
	if conn == nil {
		return nil, ErrNoClient
	}
	return &Client{
		conn:   conn,
		logger: logger.With(zap.String("component", "lsp-client")),
	}, nil
}

// Notify sends a one-way notification over the connection.
func (c *Client) Notify(ctx context.Context, method string, params any) error {
	c.logger.Debug("Sending notification", zap.String("method", method))

	if err := c.conn.Notify(ctx, method, params); err != nil {
		c.logger.Error("Notification failed",
			zap.String("method", method),
			zap.Error(err),
		)
		return err
	}
	return nil
}
