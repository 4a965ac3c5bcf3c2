package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/pkg/logger"
)

// ─── Fakes ──────────────────────────────────────────────────────────────────

type fakeLogRepo struct {
	logs []*entity.NotificationLog
}

func (f *fakeLogRepo) Create(nl *entity.NotificationLog) error {
	f.logs = append(f.logs, nl)
	return nil
}
func (f *fakeLogRepo) GetByID(id string) (*entity.NotificationLog, error) { return nil, nil }
func (f *fakeLogRepo) Update(nl *entity.NotificationLog) error            { return nil }
func (f *fakeLogRepo) ListRetryable(maxAttempts, limit int) ([]*entity.NotificationLog, error) {
	var out []*entity.NotificationLog
	for _, nl := range f.logs {
		if nl.Status == entity.NotificationStatusPending ||
			(nl.Status == entity.NotificationStatusFailed && nl.Attempts < maxAttempts) {
			out = append(out, nl)
		}
	}
	return out, nil
}
func (f *fakeLogRepo) List(string, int, int) ([]*entity.NotificationLog, error) { return f.logs, nil }

type fakeAlertSource struct {
	alerts []*entity.Alert
}

func (f *fakeAlertSource) ListActive(limit, offset int) ([]*entity.Alert, error) {
	if len(f.alerts) > limit {
		return f.alerts[:limit], nil
	}
	return f.alerts, nil
}

// fakeNotifier falla las primeras failures llamadas y luego envía.
type fakeNotifier struct {
	failures int
	sends    int
}

func (f *fakeNotifier) Send(ctx context.Context, msg Message) error {
	f.sends++
	if f.sends <= f.failures {
		return errors.New("webhook no disponible")
	}
	return nil
}

func alerta() (*entity.Alert, *entity.Product) {
	return &entity.Alert{
			ID:       "alert-1",
			Type:     entity.AlertTypeLowStock,
			Severity: entity.AlertSeverityWarning,
			Message:  "Producto Jeringa 5ml (SKU-9) con stock bajo: 3 (mínimo 10)",
		}, &entity.Product{
			ID:   "p9",
			Code: "SKU-9",
			Name: "Jeringa 5ml",
		}
}

// ─── NotifyAlert ────────────────────────────────────────────────────────────

func TestNotifyAlert_EnvioExitosoQuedaEnSent(t *testing.T) {
	repo := &fakeLogRepo{}
	d := NewDispatcher(repo, &fakeNotifier{}, &fakeAlertSource{}, "bodega@example.com", logger.Nop())

	a, p := alerta()
	require.NoError(t, d.NotifyAlert(context.Background(), a, p))

	require.Len(t, repo.logs, 1)
	nl := repo.logs[0]
	assert.Equal(t, entity.NotificationStatusSent, nl.Status)
	assert.Equal(t, 1, nl.Attempts)
	assert.NotNil(t, nl.SentAt)
	assert.Equal(t, "bodega@example.com", nl.Recipient)
	assert.Contains(t, nl.Subject, "Jeringa 5ml")
}

func TestNotifyAlert_EnvioFallidoQuedaEnFailedSinPropagar(t *testing.T) {
	repo := &fakeLogRepo{}
	d := NewDispatcher(repo, &fakeNotifier{failures: 99}, &fakeAlertSource{}, "bodega@example.com", logger.Nop())

	a, p := alerta()
	err := d.NotifyAlert(context.Background(), a, p)
	require.NoError(t, err, "el fallo de envío no es fallo de la operación")

	require.Len(t, repo.logs, 1)
	nl := repo.logs[0]
	assert.Equal(t, entity.NotificationStatusFailed, nl.Status)
	assert.Equal(t, 1, nl.Attempts)
	assert.Nil(t, nl.SentAt)
	assert.NotEmpty(t, nl.ErrorMessage)
}

// ─── RetryPending ───────────────────────────────────────────────────────────

func TestRetryPending_DesgloseDeResultados(t *testing.T) {
	repo := &fakeLogRepo{logs: []*entity.NotificationLog{
		{ID: "n1", Status: entity.NotificationStatusPending},
		{ID: "n2", Status: entity.NotificationStatusFailed, Attempts: 1},
		{ID: "n3", Status: entity.NotificationStatusFailed, Attempts: 2},
	}}
	// El primer envío del lote falla, los dos siguientes salen
	d := NewDispatcher(repo, &fakeNotifier{failures: 1}, &fakeAlertSource{}, "bodega@example.com", logger.Nop())

	res, err := d.RetryPending(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Retried)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, res.Retried, res.Sent+res.Failed)
}

func TestRetryPending_RespetaElCorteDeIntentos(t *testing.T) {
	repo := &fakeLogRepo{logs: []*entity.NotificationLog{
		{ID: "n1", Status: entity.NotificationStatusFailed, Attempts: MaxAttempts},
		{ID: "n2", Status: entity.NotificationStatusFailed, Attempts: MaxAttempts - 1},
	}}
	d := NewDispatcher(repo, &fakeNotifier{}, &fakeAlertSource{}, "bodega@example.com", logger.Nop())

	res, err := d.RetryPending(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Retried, "la agotada no vuelve a intentarse")
	assert.Equal(t, 1, res.Sent)
}

func TestRetryPending_SinPendientes(t *testing.T) {
	d := NewDispatcher(&fakeLogRepo{}, &fakeNotifier{}, &fakeAlertSource{}, "bodega@example.com", logger.Nop())

	res, err := d.RetryPending(context.Background(), 100)
	require.NoError(t, err)
	assert.Zero(t, res.Retried)
}

func TestRetryPending_ExitoLimpiaElError(t *testing.T) {
	repo := &fakeLogRepo{logs: []*entity.NotificationLog{
		{ID: "n1", Status: entity.NotificationStatusFailed, Attempts: 1, ErrorMessage: "webhook no disponible"},
	}}
	d := NewDispatcher(repo, &fakeNotifier{}, &fakeAlertSource{}, "bodega@example.com", logger.Nop())

	res, err := d.RetryPending(context.Background(), 100)
	require.NoError(t, err)
	require.Equal(t, 1, res.Sent)
	assert.Empty(t, repo.logs[0].ErrorMessage)
	assert.Equal(t, 2, repo.logs[0].Attempts)
}

// ─── SendPurchaseOrderSuggestion ────────────────────────────────────────────

func TestSendPurchaseOrderSuggestion_RegistraYEnvia(t *testing.T) {
	repo := &fakeLogRepo{}
	d := NewDispatcher(repo, &fakeNotifier{}, &fakeAlertSource{}, "bodega@example.com", logger.Nop())

	f := &entity.DemandForecast{
		ProductID:              "p9",
		ForecastedDemand:       120,
		SuggestedOrderQuantity: 150,
		Confidence:             85,
	}
	p := &entity.Product{ID: "p9", Code: "SKU-9", Name: "Jeringa 5ml", Stock: 3, MinStock: 10}
	require.NoError(t, d.SendPurchaseOrderSuggestion(context.Background(), p, f))

	require.Len(t, repo.logs, 1)
	nl := repo.logs[0]
	assert.Equal(t, entity.NotificationTypeOrderSuggestion, nl.Type)
	assert.Equal(t, entity.NotificationStatusSent, nl.Status)
	assert.Contains(t, nl.Subject, "Jeringa 5ml")
	assert.Contains(t, nl.Content, "150")
}

func TestSendPurchaseOrderSuggestion_FalloDeEnvioNoPropaga(t *testing.T) {
	repo := &fakeLogRepo{}
	d := NewDispatcher(repo, &fakeNotifier{failures: 99}, &fakeAlertSource{}, "bodega@example.com", logger.Nop())

	p := &entity.Product{ID: "p9", Code: "SKU-9", Name: "Jeringa 5ml"}
	err := d.SendPurchaseOrderSuggestion(context.Background(), p, &entity.DemandForecast{SuggestedOrderQuantity: 20})
	require.NoError(t, err)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, entity.NotificationStatusFailed, repo.logs[0].Status)
}

// ─── ProcessActiveAlerts ────────────────────────────────────────────────────

func TestProcessActiveAlerts_DesgloseDeResultados(t *testing.T) {
	repo := &fakeLogRepo{}
	source := &fakeAlertSource{alerts: []*entity.Alert{
		{ID: "a1", ProductID: "p1", Type: entity.AlertTypeLowStock, Severity: entity.AlertSeverityWarning, Message: "stock bajo"},
		{ID: "a2", ProductID: "p2", Type: entity.AlertTypeExpired, Severity: entity.AlertSeverityCritical, Message: "vencido"},
		{ID: "a3", ProductID: "p3", Type: entity.AlertTypeOutOfStock, Severity: entity.AlertSeverityCritical, Message: "agotado"},
	}}
	// El primer envío del barrido falla, los dos siguientes salen
	d := NewDispatcher(repo, &fakeNotifier{failures: 1}, source, "bodega@example.com", logger.Nop())

	res, err := d.ProcessActiveAlerts(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, res.Processed, res.Sent+res.Failed)

	// Cada alerta del barrido deja su registro enlazado
	require.Len(t, repo.logs, 3)
	assert.Equal(t, "a1", repo.logs[0].AlertID)
}

func TestProcessActiveAlerts_RespetaElLimite(t *testing.T) {
	repo := &fakeLogRepo{}
	source := &fakeAlertSource{alerts: []*entity.Alert{
		{ID: "a1", ProductID: "p1", Type: entity.AlertTypeLowStock},
		{ID: "a2", ProductID: "p2", Type: entity.AlertTypeLowStock},
	}}
	d := NewDispatcher(repo, &fakeNotifier{}, source, "bodega@example.com", logger.Nop())

	res, err := d.ProcessActiveAlerts(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Len(t, repo.logs, 1)
}

func TestProcessActiveAlerts_SinAlertasActivas(t *testing.T) {
	d := NewDispatcher(&fakeLogRepo{}, &fakeNotifier{}, &fakeAlertSource{}, "bodega@example.com", logger.Nop())

	res, err := d.ProcessActiveAlerts(context.Background(), 100)
	require.NoError(t, err)
	assert.Zero(t, res.Processed)
}
