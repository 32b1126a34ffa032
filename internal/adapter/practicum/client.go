package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"homework-bot/internal/domain/model"
	"homework-bot/internal/domain/ports"
)

const maxErrorSnippet = 512

// Client implements StatusProvider against the Practicum API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.StatusProvider = (*Client)(nil)

// New creates a new Practicum client for the statuses endpoint.
func New(endpoint, token string, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchStatus requests the homework statuses changed since windowStart and
// returns the decoded JSON body. An empty body value is logged but returned
// as is; checking its shape is left to the caller.
func (c *Client) FetchStatus(ctx context.Context, windowStart int64) (any, error) {
	const op = "fetch status"

	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &model.Error{Kind: model.KindTransport, Op: op, Err: fmt.Errorf("parse endpoint: %w", err)}
	}
	query := endpoint.Query()
	query.Set("from_date", strconv.FormatInt(windowStart, 10))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, &model.Error{Kind: model.KindTransport, Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug(ctx, "requesting homework statuses", "url", c.endpoint, "from_date", windowStart)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &model.Error{Kind: model.KindTransport, Op: op, Err: fmt.Errorf("perform request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		snippet := errorSnippet(resp.Header.Get("Content-Type"), data)
		c.logger.Error(ctx, "unexpected api status",
			"url", c.endpoint,
			"from_date", windowStart,
			"status", resp.StatusCode)
		return nil, &model.Error{
			Kind:       model.KindBadStatus,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippet),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.Error{Kind: model.KindTransport, Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &model.Error{Kind: model.KindShape, Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	if isEmptyJSON(payload) {
		c.logger.Warn(ctx, "api returned an empty json value", "body", string(bytes.TrimSpace(body)))
	}

	return payload, nil
}

// isEmptyJSON reports whether v is a JSON value that carries nothing:
// null, false, 0, "", [] or {}.
func isEmptyJSON(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}

// errorSnippet renders a short, single-line description of an error body.
// Gateways answer with HTML pages, so those are reduced to their text.
func errorSnippet(contentType string, data []byte) string {
	text := string(data)
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "text/html" {
		text = htmlToText(text)
	}
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxErrorSnippet {
		text = text[:maxErrorSnippet] + "..."
	}
	return text
}

func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}
	if node.Type == html.TextNode {
		builder.WriteString(node.Data)
		builder.WriteRune(' ')
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}
