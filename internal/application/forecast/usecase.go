// Package forecast orquesta la predicción de demanda asistida por IA con una
// caché de 30 días: una predicción vigente se sirve sin tocar el modelo.
package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/ports"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	fdomain "github.com/jhoicas/Kardex-api/internal/domain/forecast"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
	"github.com/jhoicas/Kardex-api/pkg/logger"
)

// Cuántas salidas recientes alimentan el análisis de consumo.
const consumptionWindow = 100

// OrderSuggester despacha la sugerencia de compra derivada de una predicción
// recién generada. Lo implementa el dispatcher de notificaciones.
type OrderSuggester interface {
	SendPurchaseOrderSuggestion(ctx context.Context, product *entity.Product, f *entity.DemandForecast) error
}

// UseCase genera y cachea predicciones de demanda.
// Aplica un timeout de 10 segundos en cada llamada al modelo para evitar que
// las latencias externas bloqueen los goroutines del servidor.
type UseCase struct {
	predictor    ports.DemandPredictor
	productRepo  repository.ProductRepository
	movRepo      repository.StockMovementRepository
	forecastRepo repository.DemandForecastRepository
	suggester    OrderSuggester
	log          *logger.Logger
}

// NewUseCase construye el caso de uso inyectando el puerto DemandPredictor.
func NewUseCase(
	predictor ports.DemandPredictor,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	forecastRepo repository.DemandForecastRepository,
	suggester OrderSuggester,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		predictor:    predictor,
		productRepo:  productRepo,
		movRepo:      movRepo,
		forecastRepo: forecastRepo,
		suggester:    suggester,
		log:          log,
	}
}

// GetOrGenerate devuelve la predicción vigente del producto o genera una
// nueva si no existe o ya venció. force salta la caché y siempre genera.
// La predicción generada se persiste con vigencia de 30 días; el historial
// anterior no se toca.
func (uc *UseCase) GetOrGenerate(ctx context.Context, productID string, force bool) (*dto.DemandForecastDTO, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if !force {
		latest, err := uc.forecastRepo.GetLatestByProduct(productID)
		if err != nil {
			return nil, err
		}
		if latest != nil && latest.IsValid(time.Now()) {
			return toDTO(latest, true), nil
		}
	}

	exits, err := uc.movRepo.ListRecentExits(productID, consumptionWindow)
	if err != nil {
		return nil, err
	}
	pattern := fdomain.AnalyzeConsumption(exits)

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	llmCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := uc.predictor.PredictDemand(llmCtx, product, pattern)
	if err != nil {
		uc.log.Error().Err(err).Str("product_id", productID).Msg("el predictor de demanda falló")
		return nil, fmt.Errorf("predicción de demanda: %w", domain.ErrPredictionFailed)
	}

	analysis, _ := json.Marshal(struct {
		Pattern  fdomain.Pattern `json:"pattern"`
		Analysis string          `json:"analysis"`
	}{pattern, result.Analysis})

	f := buildForecast(productID, result, analysis, time.Now())
	if err := uc.forecastRepo.Create(f); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", productID).
		Int("forecasted_demand", f.ForecastedDemand).
		Int("confidence", f.Confidence).
		Msg("predicción de demanda generada")

	// Con el stock en o bajo el mínimo la predicción recién generada se
	// convierte en sugerencia de compra. Best-effort: la predicción ya está
	// persistida y un fallo del despacho no la invalida.
	if uc.suggester != nil && product.Stock <= product.MinStock {
		if err := uc.suggester.SendPurchaseOrderSuggestion(ctx, product, f); err != nil {
			uc.log.Warn().Err(err).Str("product_id", productID).
				Msg("no se pudo despachar la sugerencia de compra")
		}
	}

	return toDTO(f, false), nil
}

// buildForecast normaliza la salida del modelo: demanda y cantidad sugerida
// nunca bajan de 1, la confianza se acota a [0, 100].
func buildForecast(productID string, r *dto.AIForecastResult, analysis []byte, now time.Time) *entity.DemandForecast {
	demand := r.ForecastedDemand
	if demand < 1 {
		demand = 1
	}
	suggested := r.SuggestedOrderQuantity
	if suggested < 1 {
		suggested = 1
	}
	confidence := r.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	return &entity.DemandForecast{
		ID:                     uuid.New().String(),
		ProductID:              productID,
		ForecastedDemand:       demand,
		SuggestedOrderQuantity: suggested,
		Confidence:             confidence,
		AnalysisData:           analysis,
		GeneratedAt:            now,
		ValidUntil:             now.Add(fdomain.ForecastValidity),
	}
}

func toDTO(f *entity.DemandForecast, fromCache bool) *dto.DemandForecastDTO {
	return &dto.DemandForecastDTO{
		ID:                     f.ID,
		ProductID:              f.ProductID,
		ForecastedDemand:       f.ForecastedDemand,
		SuggestedOrderQuantity: f.SuggestedOrderQuantity,
		Confidence:             f.Confidence,
		Analysis:               f.AnalysisData,
		ValidUntil:             f.ValidUntil,
		CreatedAt:              f.GeneratedAt,
		FromCache:              fromCache,
	}
}

// History devuelve las predicciones anteriores del producto, más recientes
// primero.
func (uc *UseCase) History(ctx context.Context, productID string, limit int) ([]*dto.DemandForecastDTO, error) {
	forecasts, err := uc.forecastRepo.ListByProduct(productID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DemandForecastDTO, len(forecasts))
	for i, f := range forecasts {
		out[i] = toDTO(f, true)
	}
	return out, nil
}
