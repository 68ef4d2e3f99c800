package api

import (
	"context"
	"fmt"
	"net/http"
)

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
	Rol         string `json:"rol"`
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth/login", payload)
	if err != nil {
		return AuthResponse{}, err
	}

	var resp AuthResponse
	if err := c.doJSON(req, &resp); err != nil {
		return AuthResponse{}, err
	}
	if resp.AccessToken == "" {
		return AuthResponse{}, fmt.Errorf("login failed: missing access_token")
	}

	c.AccessToken = resp.AccessToken
	return resp, nil
}
