// Package notify contiene los adaptadores de salida del despachador de
// notificaciones.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/Kardex-api/internal/application/notification"
)

// Verificar en tiempo de compilación que WebhookService implementa Notifier.
var _ notification.Notifier = (*WebhookService)(nil)

// WebhookService entrega notificaciones haciendo POST de un JSON a una URL
// configurada (Slack, n8n, un endpoint propio). Cualquier status fuera de
// 2xx cuenta como entrega fallida y el despachador lo registra para reintento.
type WebhookService struct {
	url        string
	httpClient *http.Client
}

// NewWebhookService construye el adaptador. Si url está vacío, Send devuelve
// error descriptivo en lugar de panic.
func NewWebhookService(url string) *WebhookService {
	return &WebhookService{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type webhookPayload struct {
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	SentAt    time.Time `json:"sent_at"`
}

// Send entrega el mensaje al webhook configurado.
func (s *WebhookService) Send(ctx context.Context, msg notification.Message) error {
	if s.url == "" {
		return fmt.Errorf("notify: NOTIFY_WEBHOOK_URL no configurado")
	}

	body, err := json.Marshal(webhookPayload{
		Recipient: msg.Recipient,
		Subject:   msg.Subject,
		Content:   msg.Content,
		Type:      msg.Type,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("notify: serializar payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return fmt.Errorf("notify: webhook HTTP %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
