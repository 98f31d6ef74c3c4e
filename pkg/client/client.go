package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrServer                 = errors.New("server error, please try again")
)

// Client is the typed API wrapper: it injects the bearer credential on every
// call, unwraps the response envelope and normalizes wire values into Go
// types.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAuthenticationRequired
	case resp.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	case resp.StatusCode >= 300:
		if decodeErr == nil && env.Error != "" {
			return errors.New(env.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if decodeErr != nil {
		return decodeErr
	}
	if !env.Success {
		if env.Error != "" {
			return errors.New(env.Error)
		}
		return ErrServer
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) Bootstrap(ctx context.Context) (bool, error) {
	var res struct {
		Created bool `json:"created"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/bootstrap", nil, &res); err != nil {
		return false, err
	}
	return res.Created, nil
}

func (c *Client) ListFreezers(ctx context.Context) ([]Freezer, error) {
	var res []Freezer
	if err := c.do(ctx, http.MethodGet, "/api/v1/freezers", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) RenameFreezer(ctx context.Context, freezerID, name string) (Freezer, error) {
	var res Freezer
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPut, "/api/v1/freezers/"+url.PathEscape(freezerID), body, &res); err != nil {
		return Freezer{}, err
	}
	return res, nil
}

func (c *Client) ListItems(ctx context.Context, freezerID string) ([]FoodItem, error) {
	path := "/api/v1/items"
	if freezerID != "" {
		path += "?freezerId=" + url.QueryEscape(freezerID)
	}

	var wire []wireFoodItem
	if err := c.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}

	items := make([]FoodItem, 0, len(wire))
	for _, w := range wire {
		items = append(items, w.normalize())
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, itemID string) (FoodItem, error) {
	var wire wireFoodItem
	if err := c.do(ctx, http.MethodGet, "/api/v1/items/"+url.PathEscape(itemID), nil, &wire); err != nil {
		return FoodItem{}, err
	}
	return wire.normalize(), nil
}

func (c *Client) CreateItem(ctx context.Context, req CreateItemRequest) (FoodItem, error) {
	var wire wireFoodItem
	if err := c.do(ctx, http.MethodPost, "/api/v1/items", req, &wire); err != nil {
		return FoodItem{}, err
	}
	return wire.normalize(), nil
}

func (c *Client) UpdateItem(ctx context.Context, itemID string, req UpdateItemRequest) (FoodItem, error) {
	var wire wireFoodItem
	if err := c.do(ctx, http.MethodPut, "/api/v1/items/"+url.PathEscape(itemID), req, &wire); err != nil {
		return FoodItem{}, err
	}
	return wire.normalize(), nil
}

func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/items/"+url.PathEscape(itemID), nil, nil)
}
