package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

func (c *Client) GetComplejos(ctx context.Context) ([]Complejo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/complejos", nil, nil)
	if err != nil {
		return nil, err
	}
	raw, err := c.doRaw(req)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems(raw)
	if err != nil {
		return nil, fmt.Errorf("list complejos: %w", err)
	}
	complejos := make([]Complejo, 0, len(items))
	for _, item := range items {
		var complejo Complejo
		if err := json.Unmarshal(item, &complejo); err != nil {
			return nil, fmt.Errorf("decode complejo: %w", err)
		}
		complejos = append(complejos, complejo)
	}
	return complejos, nil
}

func (c *Client) GetComplejoByID(ctx context.Context, id int) (Complejo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/complejos/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return Complejo{}, err
	}
	var complejo Complejo
	if err := c.doJSON(req, &complejo); err != nil {
		return Complejo{}, fmt.Errorf("get complejo %d: %w", id, err)
	}
	if complejo.IDComplejo == 0 {
		complejo.IDComplejo = id
	}
	return complejo, nil
}
