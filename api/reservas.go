package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

func (c *Client) CreateReserva(ctx context.Context, input CreateReservaInput) (Reserva, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/reservas", input)
	if err != nil {
		return Reserva{}, err
	}
	var reserva Reserva
	if err := c.doJSON(req, &reserva); err != nil {
		return Reserva{}, fmt.Errorf("create reserva: %w", err)
	}
	return reserva, nil
}

func (c *Client) GetMisReservas(ctx context.Context) ([]Reserva, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/reservas/mias", nil, nil)
	if err != nil {
		return nil, err
	}
	var reservas []Reserva
	if err := c.doJSON(req, &reservas); err != nil {
		return nil, fmt.Errorf("list reservas: %w", err)
	}
	return reservas, nil
}

// CancelarReserva cancels through POST rather than DELETE; the backend keeps
// the record and flips its estado.
func (c *Client) CancelarReserva(ctx context.Context, id int) (Reserva, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/reservas/"+strconv.Itoa(id)+"/cancelar", nil, nil)
	if err != nil {
		return Reserva{}, err
	}
	var reserva Reserva
	if err := c.doJSON(req, &reserva); err != nil {
		return Reserva{}, fmt.Errorf("cancel reserva %d: %w", id, err)
	}
	return reserva, nil
}

func (c *Client) CreateReservaAdmin(ctx context.Context, input CreateReservaAdminInput) (Reserva, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/reservas/admin/crear", input)
	if err != nil {
		return Reserva{}, err
	}
	var reserva Reserva
	if err := c.doJSON(req, &reserva); err != nil {
		return Reserva{}, fmt.Errorf("create reserva (admin): %w", err)
	}
	return reserva, nil
}

func (c *Client) CancelarReservaAdmin(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/reservas/admin/"+strconv.Itoa(id)+"/cancelar", nil, nil)
	if err != nil {
		return err
	}
	if err := c.doStatus(req); err != nil {
		return fmt.Errorf("cancel reserva %d (admin): %w", id, err)
	}
	return nil
}
