package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"react-golang/internal/config"
)

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Params are the template substitution variables; pdf_data carries the
// fully rendered document as a data URI.
type Params struct {
	ToEmail  string `json:"to_email"`
	ToName   string `json:"to_name"`
	FromName string `json:"from_name"`
	Message  string `json:"message"`
	PDFData  string `json:"pdf_data"`
}

// Client dispatches templated emails through the EmailJS REST API.
// Fire-and-forget: one attempt, any failure goes back to the caller.
type Client struct {
	http       *http.Client
	endpoint   string
	serviceID  string
	templateID string
	userID     string
}

func NewClient(cfg config.EmailJS) *Client {
	return &Client{
		http:       &http.Client{Timeout: 15 * time.Second},
		endpoint:   defaultEndpoint,
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		userID:     cfg.UserID,
	}
}

func (c *Client) Send(ctx context.Context, params Params) error {
	const op = "email.Client.Send"

	body, err := json.Marshal(struct {
		ServiceID      string `json:"service_id"`
		TemplateID     string `json:"template_id"`
		UserID         string `json:"user_id"`
		TemplateParams Params `json:"template_params"`
	}{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.userID,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detalle, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, detalle)
	}

	return nil
}
