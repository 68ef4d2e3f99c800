package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListResenas(ctx context.Context, canchaID int) ([]Resena, error) {
	q := url.Values{}
	if canchaID > 0 {
		q.Set("id_cancha", strconv.Itoa(canchaID))
	}
	req, err := c.newRequest(ctx, http.MethodGet, "/resenas", q, nil)
	if err != nil {
		return nil, err
	}
	var resenas []Resena
	if err := c.doJSON(req, &resenas); err != nil {
		return nil, fmt.Errorf("list resenas: %w", err)
	}
	return resenas, nil
}

// CreateResena posts a review. The backend requires a confirmed reservation
// for the target facility; a 403 here is an expected user-facing failure,
// not a client bug.
func (c *Client) CreateResena(ctx context.Context, input CreateResenaInput) (Resena, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/resenas", input)
	if err != nil {
		return Resena{}, err
	}
	var resena Resena
	if err := c.doJSON(req, &resena); err != nil {
		return Resena{}, fmt.Errorf("create resena: %w", err)
	}
	return resena, nil
}

func (c *Client) DeleteResena(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/resenas/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return err
	}
	if err := c.doStatus(req); err != nil {
		return fmt.Errorf("delete resena %d: %w", id, err)
	}
	return nil
}
