// Package calendar implements the event gateway against the calendar
// provider's REST API.
package calendar

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
		baseURL: cfg.Calendar.BaseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: cfg.Calendar.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type eventPayload struct {
	Title      string    `json:"summary"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Visibility string    `json:"visibility"`
}

type eventResponse struct {
	ID       string `json:"id"`
	HTMLLink string `json:"htmlLink"`
}

func (c *Client) CreateEvent(ctx context.Context, stream *model.Stream) (*model.ExternalEventRef, error) {
	var response eventResponse
	err := c.do(ctx, http.MethodPost, "/v1/events", payloadFor(stream), &response)
	if err != nil {
		return nil, err
	}

	return &model.ExternalEventRef{ExternalID: response.ID, ExternalLink: response.HTMLLink}, nil
}

func (c *Client) CreateInstantEvent(ctx context.Context, stream *model.Stream) (*model.ExternalEventRef, error) {
	var response eventResponse
	err := c.do(ctx, http.MethodPost, "/v1/events/instant", payloadFor(stream), &response)
	if err != nil {
		return nil, err
	}

	return &model.ExternalEventRef{ExternalID: response.ID, ExternalLink: response.HTMLLink}, nil
}

func (c *Client) PatchEvent(ctx context.Context, stream *model.Stream) error {
	path, err := eventPath(stream, "")
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, payloadFor(stream), nil)
}

func (c *Client) RescheduleEvent(ctx context.Context, stream *model.Stream) (*model.ExternalEventRef, error) {
	path, err := eventPath(stream, "/reschedule")
	if err != nil {
		return nil, err
	}

	var response eventResponse
	if err := c.do(ctx, http.MethodPost, path, payloadFor(stream), &response); err != nil {
		return nil, err
	}

	return &model.ExternalEventRef{ExternalID: response.ID, ExternalLink: response.HTMLLink}, nil
}

func (c *Client) CancelEvent(ctx context.Context, stream *model.Stream) error {
	path, err := eventPath(stream, "/cancel")
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, stream *model.Stream) error {
	path, err := eventPath(stream, "")
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) AddAttendees(ctx context.Context, stream *model.Stream, guests []model.Guest) error {
	path, err := eventPath(stream, "/attendees")
	if err != nil {
		return err
	}

	payload := struct {
		Attendees []model.Guest `json:"attendees"`
	}{Attendees: guests}

	return c.do(ctx, http.MethodPost, path, payload, nil)
}

func (c *Client) UpdateVisibility(ctx context.Context, stream *model.Stream) error {
	path, err := eventPath(stream, "/visibility")
	if err != nil {
		return err
	}

	payload := struct {
		Visibility string `json:"visibility"`
	}{Visibility: string(stream.Visibility)}

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

func payloadFor(stream *model.Stream) eventPayload {
	return eventPayload{
		Title:      stream.Title,
		Start:      stream.ScheduledStart,
		End:        stream.ScheduledEnd,
		Visibility: string(stream.Visibility),
	}
}

func eventPath(stream *model.Stream, suffix string) (string, error) {
	if stream.ExternalID == nil {
		return "", fmt.Errorf("stream %s has no external id", stream.ID)
	}
	return "/v1/events/" + *stream.ExternalID + suffix, nil
}
