package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// ScoreUpdate is one signed score message from the oracle feed.
type ScoreUpdate struct {
	Wallet    string `json:"wallet"`    // wallet pubkey (base58)
	Score     uint8  `json:"score"`     // risk score 0-255
	Timestamp int64  `json:"timestamp"` // oracle timestamp (ms)
	Signature string `json:"signature"` // ed25519 signature (base58)
}

// FeedConfig configures the oracle feed client behavior.
type FeedConfig struct {
	// ReconnectDelay is initial delay before reconnect attempt.
	ReconnectDelay time.Duration
	// MaxReconnectDelay is maximum delay between reconnect attempts.
	MaxReconnectDelay time.Duration
	// PingInterval is interval for sending ping frames.
	PingInterval time.Duration
	// ReadTimeout is timeout for reading messages.
	ReadTimeout time.Duration
	// WriteTimeout is timeout for writing control frames.
	WriteTimeout time.Duration
	// Buffer is the outgoing update channel capacity.
	Buffer int
}

// DefaultFeedConfig returns default feed configuration.
func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		ReconnectDelay:    1 * time.Second,
		MaxReconnectDelay: 30 * time.Second,
		PingInterval:      30 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		Buffer:            256,
	}
}

// FeedClient consumes the oracle's websocket stream of signed score
// updates. Malformed messages are dropped without terminating the stream;
// connection loss triggers reconnect with exponential backoff.
type FeedClient struct {
	endpoint string
	config   FeedConfig
	logger   *log.Logger

	conn   *websocket.Conn
	connMu sync.Mutex
	closed atomic.Bool

	updates chan *ScoreUpdate
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewFeedClient creates a feed client and connects to the endpoint.
func NewFeedClient(ctx context.Context, endpoint string, config *FeedConfig, logger *log.Logger) (*FeedClient, error) {
	cfg := DefaultFeedConfig()
	if config != nil {
		cfg = *config
	}
	if logger == nil {
		logger = log.Default()
	}

	c := &FeedClient{
		endpoint: endpoint,
		config:   cfg,
		logger:   logger,
		updates:  make(chan *ScoreUpdate, cfg.Buffer),
		done:     make(chan struct{}),
	}

	if err := c.connect(ctx); err != nil {
		return nil, err
	}

	c.wg.Add(1)
	go c.readLoop()

	c.wg.Add(1)
	go c.pingLoop()

	return c, nil
}

// Updates returns the channel of decoded score updates. The channel is
// closed when the client shuts down.
func (c *FeedClient) Updates() <-chan *ScoreUpdate {
	return c.updates
}

// Close shuts down the client and closes the updates channel.
func (c *FeedClient) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(c.done)

	c.connMu.Lock()
	if c.conn != nil {
		c.conn.Close()
	}
	c.connMu.Unlock()

	c.wg.Wait()
	close(c.updates)
	return nil
}

// connect establishes the websocket connection.
func (c *FeedClient) connect(ctx context.Context) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("websocket dial %s: %w", c.endpoint, err)
	}

	c.conn = conn
	return nil
}

// readLoop reads messages until shutdown, reconnecting on failure.
func (c *FeedClient) readLoop() {
	defer c.wg.Done()

	for {
		select {
		case <-c.done:
			return
		default:
		}

		c.connMu.Lock()
		conn := c.conn
		c.connMu.Unlock()

		if conn == nil {
			if !c.reconnect() {
				return
			}
			continue
		}

		conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if c.closed.Load() {
				return
			}
			c.logger.Printf("oracle feed read: %v", err)
			if !c.reconnect() {
				return
			}
			continue
		}

		var update ScoreUpdate
		if err := json.Unmarshal(data, &update); err != nil {
			c.logger.Printf("oracle feed: drop malformed message: %v", err)
			continue
		}
		if update.Wallet == "" || update.Signature == "" {
			c.logger.Printf("oracle feed: drop incomplete message")
			continue
		}

		select {
		case c.updates <- &update:
		case <-c.done:
			return
		}
	}
}

// reconnect re-establishes the connection with exponential backoff.
// Returns false when the client is shutting down.
func (c *FeedClient) reconnect() bool {
	delay := c.config.ReconnectDelay

	for {
		select {
		case <-c.done:
			return false
		case <-time.After(delay):
		}

		c.connMu.Lock()
		if c.conn != nil {
			c.conn.Close()
			c.conn = nil
		}
		c.connMu.Unlock()

		if err := c.connect(context.Background()); err != nil {
			c.logger.Printf("oracle feed reconnect: %v", err)
			delay *= 2
			if delay > c.config.MaxReconnectDelay {
				delay = c.config.MaxReconnectDelay
			}
			continue
		}

		c.logger.Printf("oracle feed reconnected to %s", c.endpoint)
		return true
	}
}

// pingLoop sends periodic ping frames to keep the connection alive.
func (c *FeedClient) pingLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.connMu.Lock()
			conn := c.conn
			if conn != nil {
				conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					c.logger.Printf("oracle feed ping: %v", err)
				}
			}
			c.connMu.Unlock()
		}
	}
}
