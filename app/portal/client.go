package portal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"agrimate/app/agrimate/model"
)

// Client talks to the AgriMate backend.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
	}
}

func (c *Client) FetchPrices(ctx context.Context, state, district string) ([]model.Price, error) {
	req := c.http.R().SetContext(ctx)
	if state != "" {
		req.SetQueryParam("state", state)
	}
	if district != "" {
		req.SetQueryParam("district", district)
	}
	resp, err := req.Get("/prices")
	if err != nil {
		return nil, errors.Wrap(err, "fetch prices")
	}
	if resp.IsError() {
		return nil, errors.Errorf("fetch prices: server returned %s", resp.Status())
	}
	return Normalize[model.Price](resp.Body()), nil
}

func (c *Client) FetchSchemes(ctx context.Context, state string) ([]model.Scheme, error) {
	req := c.http.R().SetContext(ctx)
	path := "/schemes"
	if state != "" {
		path = "/schemes/state"
		req.SetQueryParam("state", state)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, errors.Wrap(err, "fetch schemes")
	}
	if resp.IsError() {
		return nil, errors.Errorf("fetch schemes: server returned %s", resp.Status())
	}
	return Normalize[model.Scheme](resp.Body()), nil
}

// Normalize accepts either a bare JSON list or an envelope object carrying a
// data list; any other shape becomes an empty list. Every ingestion point goes
// through here so no caller ever shape-sniffs on its own.
func Normalize[T any](raw []byte) []T {
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return []T{}
		}
		return list
	}
	var env struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		return env.Data
	}
	return []T{}
}
