// Package notification registra y despacha notificaciones salientes con un
// log auditable: cada envío se persiste en pending antes de intentarse y
// transiciona a sent o failed según el resultado. Los fallos se reintentan
// hasta un corte de intentos.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
	"github.com/jhoicas/Kardex-api/pkg/logger"
)

// MaxAttempts corta los reintentos: una notificación fallida con este número
// de intentos ya no vuelve a encolarse.
const MaxAttempts = 5

// Dispatcher crea registros de notificación y los envía por el Notifier.
type Dispatcher struct {
	logRepo   repository.NotificationLogRepository
	notifier  Notifier
	alerts    AlertSource
	recipient string // destino por defecto (email del responsable de bodega)
	log       *logger.Logger
}

// NewDispatcher construye el despachador.
func NewDispatcher(
	logRepo repository.NotificationLogRepository,
	notifier Notifier,
	alerts AlertSource,
	recipient string,
	log *logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		logRepo:   logRepo,
		notifier:  notifier,
		alerts:    alerts,
		recipient: recipient,
		log:       log,
	}
}

// NotifyAlert registra y despacha la notificación de una alerta.
// Primero persiste el registro en pending; si el proceso muere a mitad del
// envío queda una fila auditable que el reintento recoge después. El error
// de envío NO se propaga como fallo de la operación: queda registrado en el
// log de notificaciones.
func (d *Dispatcher) NotifyAlert(ctx context.Context, alert *entity.Alert, product *entity.Product) error {
	subject := fmt.Sprintf("[%s] Alerta de inventario: %s", alert.Severity, product.Name)
	nl := &entity.NotificationLog{
		ID:        uuid.New().String(),
		AlertID:   alert.ID,
		ProductID: product.ID,
		Type:      alert.Type,
		Recipient: d.recipient,
		Subject:   subject,
		Content:   alert.Message,
		Status:    entity.NotificationStatusPending,
		CreatedAt: time.Now(),
	}
	if err := d.logRepo.Create(nl); err != nil {
		return err
	}

	d.deliver(ctx, nl)
	return nil
}

// deliver intenta el envío y actualiza el registro a sent o failed.
func (d *Dispatcher) deliver(ctx context.Context, nl *entity.NotificationLog) {
	nl.Attempts++
	err := d.notifier.Send(ctx, Message{
		Recipient: nl.Recipient,
		Subject:   nl.Subject,
		Content:   nl.Content,
		Type:      nl.Type,
	})
	if err != nil {
		nl.Status = entity.NotificationStatusFailed
		nl.ErrorMessage = err.Error()
		d.log.Warn().Err(err).Str("notification_id", nl.ID).Int("attempts", nl.Attempts).
			Msg("envío de notificación fallido")
	} else {
		now := time.Now()
		nl.Status = entity.NotificationStatusSent
		nl.SentAt = &now
		nl.ErrorMessage = ""
	}
	if uerr := d.logRepo.Update(nl); uerr != nil {
		d.log.Error().Err(uerr).Str("notification_id", nl.ID).
			Msg("no se pudo actualizar el registro de notificación")
	}
}

// SendPurchaseOrderSuggestion registra y despacha la sugerencia de compra que
// sale de una predicción de demanda. Mismas garantías que NotifyAlert: el
// registro se persiste en pending antes del intento y el fallo de envío no es
// fallo de la operación.
func (d *Dispatcher) SendPurchaseOrderSuggestion(ctx context.Context, product *entity.Product, f *entity.DemandForecast) error {
	nl := &entity.NotificationLog{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Type:      entity.NotificationTypeOrderSuggestion,
		Recipient: d.recipient,
		Subject:   fmt.Sprintf("Sugerencia de compra: %s (%s)", product.Name, product.Code),
		Content: fmt.Sprintf(
			"Demanda proyectada a 30 días: %d unidades. Cantidad sugerida de compra: %d (confianza %d%%). Stock actual: %d, mínimo: %d.",
			f.ForecastedDemand, f.SuggestedOrderQuantity, f.Confidence, product.Stock, product.MinStock),
		Status:    entity.NotificationStatusPending,
		CreatedAt: time.Now(),
	}
	if err := d.logRepo.Create(nl); err != nil {
		return err
	}
	d.deliver(ctx, nl)
	return nil
}

// ProcessResult resume un barrido de alertas activas.
type ProcessResult struct {
	Processed int
	Sent      int
	Failed    int
}

// ProcessActiveAlerts redespacha las alertas activas: toma una foto de hasta
// limit alertas sin resolver y envía cada una como notificación nueva. El
// fallo de una alerta no interrumpe el barrido; el desglose siempre cumple
// Processed == Sent + Failed.
func (d *Dispatcher) ProcessActiveAlerts(ctx context.Context, limit int) (ProcessResult, error) {
	active, err := d.alerts.ListActive(limit, 0)
	if err != nil {
		return ProcessResult{}, err
	}
	var res ProcessResult
	for _, alert := range active {
		nl := &entity.NotificationLog{
			ID:        uuid.New().String(),
			AlertID:   alert.ID,
			ProductID: alert.ProductID,
			Type:      alert.Type,
			Recipient: d.recipient,
			Subject:   fmt.Sprintf("[%s] Alerta activa: %s", alert.Severity, alert.Type),
			Content:   alert.Message,
			Status:    entity.NotificationStatusPending,
			CreatedAt: time.Now(),
		}
		if err := d.logRepo.Create(nl); err != nil {
			d.log.Error().Err(err).Str("alert_id", alert.ID).
				Msg("no se pudo registrar la notificación del barrido")
			res.Processed++
			res.Failed++
			continue
		}
		d.deliver(ctx, nl)
		res.Processed++
		if nl.Status == entity.NotificationStatusSent {
			res.Sent++
		} else {
			res.Failed++
		}
	}
	return res, nil
}

// RetryResult resume un lote de reintentos.
type RetryResult struct {
	Retried int
	Sent    int
	Failed  int
}

// RetryPending reintenta las notificaciones pendientes y las fallidas que no
// alcanzaron el corte de MaxAttempts. Devuelve cuántas se reintentaron y el
// desglose de resultados; siempre Retried == Sent + Failed.
func (d *Dispatcher) RetryPending(ctx context.Context, limit int) (RetryResult, error) {
	pending, err := d.logRepo.ListRetryable(MaxAttempts, limit)
	if err != nil {
		return RetryResult{}, err
	}
	var res RetryResult
	for _, nl := range pending {
		d.deliver(ctx, nl)
		res.Retried++
		if nl.Status == entity.NotificationStatusSent {
			res.Sent++
		} else {
			res.Failed++
		}
	}
	return res, nil
}

// List expone el log de notificaciones para consulta.
func (d *Dispatcher) List(ctx context.Context, status string, limit, offset int) ([]*entity.NotificationLog, error) {
	return d.logRepo.List(status, limit, offset)
}
