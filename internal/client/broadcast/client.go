// Package broadcast implements the event gateway against the live
// broadcast provider. Broadcasts carry no guest list, so AddAttendees is
// not supported here.
package broadcast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
)

type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

type Client struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
}

func New(cfg *config.Config, tokens TokenProvider) *Client {
	return &Client{
		baseURL: cfg.Broadcast.BaseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: cfg.Broadcast.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type broadcastPayload struct {
	Title          string    `json:"title"`
	ScheduledStart time.Time `json:"scheduledStartTime"`
	ScheduledEnd   time.Time `json:"scheduledEndTime"`
	Privacy        string    `json:"privacyStatus"`
}

type broadcastResponse struct {
	ID       string `json:"id"`
	WatchURL string `json:"watchUrl"`
}

func (c *Client) CreateEvent(ctx context.Context, stream *model.Stream) (*model.ExternalEventRef, error) {
	var response broadcastResponse
	if err := c.do(ctx, http.MethodPost, "/v1/broadcasts", payloadFor(stream), &response); err != nil {
		return nil, err
	}

	return &model.ExternalEventRef{ExternalID: response.ID, ExternalLink: response.WatchURL}, nil
}

func (c *Client) CreateInstantEvent(ctx context.Context, stream *model.Stream) (*model.ExternalEventRef, error) {
	var response broadcastResponse
	if err := c.do(ctx, http.MethodPost, "/v1/broadcasts/instant", payloadFor(stream), &response); err != nil {
		return nil, err
	}

	return &model.ExternalEventRef{ExternalID: response.ID, ExternalLink: response.WatchURL}, nil
}

func (c *Client) PatchEvent(ctx context.Context, stream *model.Stream) error {
	path, err := broadcastPath(stream, "")
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, payloadFor(stream), nil)
}

func (c *Client) RescheduleEvent(ctx context.Context, stream *model.Stream) (*model.ExternalEventRef, error) {
	path, err := broadcastPath(stream, "/reschedule")
	if err != nil {
		return nil, err
	}

	var response broadcastResponse
	if err := c.do(ctx, http.MethodPost, path, payloadFor(stream), &response); err != nil {
		return nil, err
	}

	return &model.ExternalEventRef{ExternalID: response.ID, ExternalLink: response.WatchURL}, nil
}

func (c *Client) CancelEvent(ctx context.Context, stream *model.Stream) error {
	path, err := broadcastPath(stream, "/cancel")
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, stream *model.Stream) error {
	path, err := broadcastPath(stream, "")
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) AddAttendees(_ context.Context, stream *model.Stream, _ []model.Guest) error {
	return fmt.Errorf("broadcast provider does not support attendees for stream %s", stream.ID)
}

func (c *Client) UpdateVisibility(ctx context.Context, stream *model.Stream) error {
	path, err := broadcastPath(stream, "/visibility")
	if err != nil {
		return err
	}

	payload := struct {
		Privacy string `json:"privacyStatus"`
	}{Privacy: string(stream.Visibility)}

	return c.do(ctx, http.MethodPut, path, payload, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body *bytes.Buffer
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	accessToken, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func payloadFor(stream *model.Stream) broadcastPayload {
	return broadcastPayload{
		Title:          stream.Title,
		ScheduledStart: stream.ScheduledStart,
		ScheduledEnd:   stream.ScheduledEnd,
		Privacy:        string(stream.Visibility),
	}
}

func broadcastPath(stream *model.Stream, suffix string) (string, error) {
	if stream.ExternalID == nil {
		return "", fmt.Errorf("stream %s has no external id", stream.ID)
	}
	return "/v1/broadcasts/" + *stream.ExternalID + suffix, nil
}
