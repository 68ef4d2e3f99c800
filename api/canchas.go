package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetCanchas lists facilities. Records are returned raw because the backend
// answers in one of two field-naming conventions; catalog.AdaptFacility
// normalizes them.
func (c *Client) GetCanchas(ctx context.Context, filters CanchaFilters) ([]json.RawMessage, error) {
	q := url.Values{}
	if filters.Deporte != "" {
		q.Set("deporte", filters.Deporte)
	}
	if filters.Cubierta != nil {
		q.Set("cubierta", strconv.FormatBool(*filters.Cubierta))
	}
	if filters.IDComplejo > 0 {
		q.Set("id_complejo", strconv.Itoa(filters.IDComplejo))
	}
	if filters.Query != "" {
		q.Set("q", filters.Query)
	}
	if filters.MaxPrecio > 0 {
		q.Set("max_precio", strconv.FormatFloat(filters.MaxPrecio, 'f', -1, 64))
	}
	if filters.Page > 0 {
		q.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(filters.PageSize))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/canchas", q, nil)
	if err != nil {
		return nil, err
	}
	raw, err := c.doRaw(req)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems(raw)
	if err != nil {
		return nil, fmt.Errorf("list canchas: %w", err)
	}
	return items, nil
}

func (c *Client) GetCanchaByID(ctx context.Context, id int) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/canchas/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return nil, err
	}
	raw, err := c.doRaw(req)
	if err != nil {
		return nil, fmt.Errorf("get cancha %d: %w", id, err)
	}
	return raw, nil
}

// CreateCancha posts a facility creation payload built by
// catalog.CreatePayload. Requires an admin access token.
func (c *Client) CreateCancha(ctx context.Context, payload map[string]any) (json.RawMessage, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/admin/canchas", payload)
	if err != nil {
		return nil, err
	}
	raw, err := c.doRaw(req)
	if err != nil {
		return nil, fmt.Errorf("create cancha: %w", err)
	}
	return raw, nil
}

func (c *Client) UpdateCancha(ctx context.Context, id int, payload map[string]any) (json.RawMessage, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, "/admin/canchas/"+strconv.Itoa(id), payload)
	if err != nil {
		return nil, err
	}
	raw, err := c.doRaw(req)
	if err != nil {
		return nil, fmt.Errorf("update cancha %d: %w", id, err)
	}
	return raw, nil
}

func (c *Client) DeleteCancha(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/admin/canchas/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return err
	}
	if err := c.doStatus(req); err != nil {
		return fmt.Errorf("delete cancha %d: %w", id, err)
	}
	return nil
}
