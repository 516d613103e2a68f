package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// AlertPolicy parametriza la derivación de alertas. Ventana de vencimiento
// y período de gracia de entregas son decisiones de política operativa
// (3 días / sin gracia por defecto), no reglas documentadas; por eso se
// cargan desde configuración.
type AlertPolicy struct {
	ExpiryWindow  time.Duration    // alerta expiring cuando ExpiryDate <= now + ventana
	DeliveryGrace time.Duration    // ActionRequired solo si el atraso supera la gracia
	Now           func() time.Time // inyectable para tests; nil = time.Now
}

// DefaultAlertPolicy ventana de 3 días y gracia cero.
func DefaultAlertPolicy() AlertPolicy {
	return AlertPolicy{ExpiryWindow: 72 * time.Hour, DeliveryGrace: 0}
}

func (p AlertPolicy) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// DeriveAlerts recalcula el conjunto completo de alertas a partir del
// estado actual de ingredientes y órdenes. Las alertas no son estado
// persistido: cada evaluación reemplaza al conjunto anterior, y se emite
// como máximo una alerta low_stock por ingrediente y una delivery_delay
// por orden. El resultado se ordena por severidad (error > warning > info)
// y luego por timestamp descendente, con desempate estable para que la
// salida sea determinista.
func (p AlertPolicy) DeriveAlerts(ingredients []*entity.Ingredient, orders []*entity.PurchaseOrder) []entity.Alert {
	now := p.now()
	var alerts []entity.Alert

	for _, ing := range ingredients {
		if IsLowStock(ing) {
			severity := entity.AlertSeverityWarning
			if ing.CurrentStock.IsZero() {
				severity = entity.AlertSeverityError
			}
			id := ing.ID
			alerts = append(alerts, entity.Alert{
				Type:     entity.AlertTypeLowStock,
				Title:    "Estoque baixo: " + ing.Name,
				Message: fmt.Sprintf("%s está em %s %s (mínimo %s %s)",
					ing.Name, ing.CurrentStock.String(), ing.Unit, ing.MinStock.String(), ing.Unit),
				Severity:       severity,
				Timestamp:      now,
				IngredientID:   &id,
				ActionRequired: true,
			})
		}
		if ing.ExpiryDate != nil && !ing.ExpiryDate.After(now.Add(p.ExpiryWindow)) {
			id := ing.ID
			alerts = append(alerts, entity.Alert{
				Type:           entity.AlertTypeExpiring,
				Title:          "Vencimento próximo: " + ing.Name,
				Message:        fmt.Sprintf("%s vence em %s", ing.Name, ing.ExpiryDate.Format("02/01/2006")),
				Severity:       entity.AlertSeverityError,
				Timestamp:      now,
				IngredientID:   &id,
				ActionRequired: true,
			})
		}
	}

	for _, order := range orders {
		if order.Status == entity.OrderStatusDelivered || order.Status == entity.OrderStatusCancelled {
			continue
		}
		if order.ExpectedDelivery == nil || !order.ExpectedDelivery.Before(now) {
			continue
		}
		overdue := now.Sub(*order.ExpectedDelivery)
		id := order.ID
		alerts = append(alerts, entity.Alert{
			Type:           entity.AlertTypeDeliveryDelay,
			Title:          fmt.Sprintf("Entrega atrasada: ordem #%d", order.ID),
			Message:        fmt.Sprintf("A ordem #%d deveria ter sido entregue em %s", order.ID, order.ExpectedDelivery.Format("02/01/2006")),
			Severity:       entity.AlertSeverityWarning,
			Timestamp:      now,
			OrderID:        &id,
			ActionRequired: overdue > p.DeliveryGrace,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := severityRank(alerts[i].Severity), severityRank(alerts[j].Severity)
		if ri != rj {
			return ri > rj
		}
		if !alerts[i].Timestamp.Equal(alerts[j].Timestamp) {
			return alerts[i].Timestamp.After(alerts[j].Timestamp)
		}
		return alertKey(alerts[i]) < alertKey(alerts[j])
	})
	return alerts
}

func severityRank(severity string) int {
	switch severity {
	case entity.AlertSeverityError:
		return 2
	case entity.AlertSeverityWarning:
		return 1
	}
	return 0
}

// alertKey identidad efectiva de la alerta: (tipo, ingrediente u orden).
func alertKey(a entity.Alert) string {
	switch {
	case a.IngredientID != nil:
		return fmt.Sprintf("%s:i%d", a.Type, *a.IngredientID)
	case a.OrderID != nil:
		return fmt.Sprintf("%s:o%d", a.Type, *a.OrderID)
	}
	return a.Type
}
