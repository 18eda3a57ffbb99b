package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/peng15653830a/springai-chat-sub004/internal/cli/types"
)

// APIClient wraps Hertz Client for HTTP communication with the chat API server
type APIClient struct {
	client *client.Client
	server string
	token  string
}

// NewAPIClient creates a new API client
func NewAPIClient(server, token string) (*APIClient, error) {
	// Normalize server URL
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	// Use standard library dialer for streaming support
	// netpoll doesn't support streaming well, causing panics
	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithResponseBodyStream(true),     // Enable streaming response support
		client.WithDialer(standard.NewDialer()), // Use standard library for streaming
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
		token:  token,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	// Add scheme if missing
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	// Parse and validate
	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	// Return scheme://host (no path, no trailing slash)
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// Login performs user login
func (c *APIClient) Login(ctx context.Context, username, password string) (*types.APIResponse[types.LoginData], error) {
	// Build request body
	reqBody := types.LoginRequest{
		Username: username,
		Password: password,
	}
	bodyBytes, err := sonic.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create request
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointLogin)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	// Send request
	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	// Check HTTP status code first
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("login failed with HTTP status: %d", resp.StatusCode())
	}

	// Parse response
	var loginResp types.APIResponse[types.LoginData]
	if err := sonic.Unmarshal(resp.Body(), &loginResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &loginResp, nil
}

// ListConversations lists the caller's conversations, newest first
func (c *APIClient) ListConversations(ctx context.Context) ([]types.Conversation, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpointConversations)
	req.Header.Set("Authorization", "Bearer "+c.token)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("failed to list conversations (HTTP %d)", resp.StatusCode())
	}

	var listResp types.APIResponse[types.ListData[types.Conversation]]
	if err := sonic.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return listResp.Data.Items, nil
}

// History fetches the stored messages of a conversation in order
func (c *APIClient) History(ctx context.Context, conversationID string) ([]types.Message, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(fmt.Sprintf("%s"+endpointConversationHistory, c.server, conversationID))
	req.Header.Set("Authorization", "Bearer "+c.token)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("failed to fetch history (HTTP %d)", resp.StatusCode())
	}

	var listResp types.APIResponse[types.ListData[types.Message]]
	if err := sonic.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return listResp.Data.Items, nil
}

// DeleteConversation deletes a conversation with its messages
func (c *APIClient) DeleteConversation(ctx context.Context, conversationID string) error {
	req := &protocol.Request{}
	req.SetMethod("DELETE")
	req.SetRequestURI(fmt.Sprintf("%s"+endpointConversationByID, c.server, conversationID))
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp := &protocol.Response{}
	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		body := resp.Body()
		return fmt.Errorf("delete failed with HTTP status: %d, body: %s", statusCode, string(body))
	}

	return nil
}

// StreamChat sends one chat turn and returns the live event stream
func (c *APIClient) StreamChat(ctx context.Context, chatReq types.StreamChatRequest) (<-chan types.StreamEvent, <-chan error, error) {
	if strings.TrimSpace(chatReq.Message) == "" {
		return nil, nil, fmt.Errorf("chat request requires a message")
	}

	bodyBytes, err := sonic.Marshal(chatReq)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create request
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointChatStream)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.SetBody(bodyBytes)

	// Use Do() - Hertz will handle streaming response through BodyStream()
	if err := c.client.Do(ctx, req, resp); err != nil {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}

	// Check status code
	if resp.StatusCode() != 200 {
		statusCode := resp.StatusCode()
		body := resp.Body()
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
		return nil, nil, fmt.Errorf("chat failed with HTTP status: %d, body: %s", statusCode, string(body))
	}

	// Create channels for streaming
	eventCh := make(chan types.StreamEvent, 10)
	errCh := make(chan error, 1)

	// Start goroutine to read SSE stream in real-time
	go func() {
		defer func() {
			close(eventCh)
			close(errCh)
			protocol.ReleaseRequest(req)
			protocol.ReleaseResponse(resp)
		}()

		// Use BodyStream() for streaming read
		bodyStream := resp.BodyStream()
		if bodyStream == nil {
			errCh <- fmt.Errorf("body stream is nil")
			return
		}

		// Parse SSE stream line by line as data arrives
		c.parseSSEStream(bodyStream, eventCh, errCh)
	}()

	return eventCh, errCh, nil
}

// parseSSEStream reads the SSE stream line by line using Hertz's BodyStream().
// Events arrive as "event:" and "data:" line pairs separated by blank lines;
// the stream ends after a terminal end or error event.
func (c *APIClient) parseSSEStream(reader io.Reader, eventCh chan<- types.StreamEvent, errCh chan<- error) {
	scanner := bufio.NewScanner(reader)

	// Increase buffer size for large SSE messages
	const maxScanTokenSize = 1024 * 1024 // 1MB
	buf := make([]byte, maxScanTokenSize)
	scanner.Buffer(buf, maxScanTokenSize)

	var current types.StreamEvent
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		// Skip comments
		if strings.HasPrefix(line, ":") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "event:"):
			current.Name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))

		case strings.HasPrefix(line, "data:"):
			current.Data = []byte(strings.TrimSpace(strings.TrimPrefix(line, "data:")))

		case line == "":
			if current.Name == "" && current.Data == nil {
				continue
			}
			terminal := current.Name == "end" || current.Name == "error"

			select {
			case eventCh <- current:
			case <-time.After(5 * time.Second):
				errCh <- fmt.Errorf("timeout sending event to channel")
				return
			}
			current = types.StreamEvent{}

			if terminal {
				return
			}
		}
	}

	// Check for scanner errors
	if err := scanner.Err(); err != nil {
		// Don't report EOF as error
		if err != io.EOF {
			errCh <- fmt.Errorf("scanner error: %w", err)
		}
	}
}
