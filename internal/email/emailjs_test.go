package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"react-golang/internal/config"
)

func newTestClient(endpoint string) *Client {
	c := NewClient(config.EmailJS{
		ServiceID:  "service_abc",
		TemplateID: "template_xyz",
		UserID:     "user_123",
	})
	c.endpoint = endpoint
	c.http = &http.Client{Timeout: 2 * time.Second}
	return c
}

func TestSend(t *testing.T) {
	var recibido map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	err := client.Send(context.Background(), Params{
		ToEmail:  "jose@example.com",
		ToName:   "José García",
		FromName: "Sistema de Partes de Trabajo",
		Message:  "Adjunto encontrará el parte de trabajo para la obra Reforma",
		PDFData:  "data:application/pdf;base64,JVBERi0=",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `"service_abc"`, string(recibido["service_id"]))
	assert.JSONEq(t, `"template_xyz"`, string(recibido["template_id"]))
	assert.JSONEq(t, `"user_123"`, string(recibido["user_id"]))

	var params Params
	require.NoError(t, json.Unmarshal(recibido["template_params"], &params))
	assert.Equal(t, "jose@example.com", params.ToEmail)
	assert.Equal(t, "data:application/pdf;base64,JVBERi0=", params.PDFData)
}

func TestSend_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid template", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	err := client.Send(context.Background(), Params{ToEmail: "jose@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid template")
}

func TestSend_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Send(ctx, Params{ToEmail: "jose@example.com"})
	assert.Error(t, err)
}
