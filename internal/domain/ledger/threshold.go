package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// Clasificación de un ingrediente según su stock frente al umbral mínimo.
const (
	LevelCritical = "critical"
	LevelLow      = "low"
	LevelNormal   = "normal"
)

// Thresholds parametriza la banda de stock bajo. La banda 1.5× es una
// heurística operativa, no una regla de negocio documentada; por eso es
// política configurable y no constante.
type Thresholds struct {
	LowBand decimal.Decimal // multiplicador sobre MinStock que delimita "low"
}

// DefaultThresholds banda 1.5× sobre el mínimo.
func DefaultThresholds() Thresholds {
	return Thresholds{LowBand: decimal.NewFromFloat(1.5)}
}

// Classify devuelve critical cuando stock <= min, low cuando
// min < stock <= min*banda, y normal en el resto. Función pura del
// estado del ingrediente: al caer el stock la clasificación solo puede
// volverse más severa.
func (t Thresholds) Classify(ing *entity.Ingredient) string {
	if ing.CurrentStock.LessThanOrEqual(ing.MinStock) {
		return LevelCritical
	}
	if ing.CurrentStock.LessThanOrEqual(ing.MinStock.Mul(t.LowBand)) {
		return LevelLow
	}
	return LevelNormal
}

// IsLowStock es la definición estricta usada para disparar alertas:
// stock <= mínimo. Distinta del Classify de tres bandas, que es para
// reportes y buckets visuales.
func IsLowStock(ing *entity.Ingredient) bool {
	return ing.CurrentStock.LessThanOrEqual(ing.MinStock)
}
