// Package ai contiene los adaptadores de modelos de lenguaje que implementan
// el puerto DemandPredictor. Cada adaptador habla con la API REST de su
// proveedor usando net/http; el análisis de consumo llega ya calculado desde
// el dominio y solo se serializa dentro del prompt.
package ai

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/forecast"
)

const forecastSystemPrompt = `Eres un analista de inventarios especializado en predicción de demanda.
Recibes el perfil de un producto y su patrón de consumo mensual reciente.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código` + " ```json" + `) con esta estructura exacta:
{
  "forecastedDemand": <entero: unidades estimadas de demanda para el próximo mes>,
  "suggestedOrderQuantity": <entero: cantidad sugerida a pedir considerando stock actual y stock mínimo>,
  "confidence": <entero entre 0 y 100>,
  "analysis": "<explicación concisa en español del razonamiento, máximo 300 caracteres>"
}

Reglas:
- forecastedDemand y suggestedOrderQuantity deben ser enteros positivos.
- Si la tendencia es creciente, la demanda estimada debe superar el promedio mensual; si es decreciente, quedar por debajo.
- suggestedOrderQuantity debe cubrir la demanda estimada más el stock mínimo, descontando el stock actual.
- confidence: 80–100 con seis meses de historia estable, menos con pocos datos o alta variación.
- No incluyas texto fuera del JSON. Solo el objeto JSON.`

// buildForecastPrompt arma el mensaje de usuario con el perfil del producto y
// el patrón de consumo. Formato de texto plano; la estructura de salida la
// fija el system prompt.
func buildForecastPrompt(p *entity.Product, pattern forecast.Pattern) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Producto: %s (código %s)\n", p.Name, p.Code)
	fmt.Fprintf(&b, "Stock actual: %d | Stock mínimo: %d | Stock máximo: %d | Cantidad de reorden: %d\n",
		p.Stock, p.MinStock, p.MaxStock, p.ReorderQuantity)
	fmt.Fprintf(&b, "Consumo total últimos meses: %d unidades | Promedio mensual: %.1f\n",
		pattern.TotalConsumed, pattern.AverageMonthly)
	fmt.Fprintf(&b, "Tendencia: %s | Estacionalidad: %t\n", pattern.Trend, pattern.HasSeasonality)
	b.WriteString("Consumo por mes:\n")
	if len(pattern.Months) == 0 {
		b.WriteString("  (sin salidas registradas)\n")
	}
	for _, mc := range pattern.Months {
		fmt.Fprintf(&b, "  %s: %d unidades\n", mc.Month, mc.Quantity)
	}
	return b.String()
}

// normalizeForecast fuerza los valores del modelo a rangos sanos: demanda y
// cantidad sugerida al menos 1, confianza en [0, 100]. El use case vuelve a
// normalizar antes de persistir, pero el adaptador entrega datos ya limpios.
func normalizeForecast(r *dto.AIForecastResult) {
	if r.ForecastedDemand < 1 {
		r.ForecastedDemand = 1
	}
	if r.SuggestedOrderQuantity < 1 {
		r.SuggestedOrderQuantity = 1
	}
	if r.Confidence < 0 {
		r.Confidence = 0
	} else if r.Confidence > 100 {
		r.Confidence = 100
	}
}
