package alerts

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// UseCase evalúa las alertas operativas del restaurante. No hay tabla de
// alertas: cada llamada deriva el conjunto completo desde el estado actual
// de ingredientes y órdenes.
type UseCase struct {
	ingredientRepo repository.IngredientRepository
	orderRepo      repository.OrderRepository
	policy         ledger.AlertPolicy
}

// NewUseCase construye el evaluador de alertas.
func NewUseCase(
	ingredientRepo repository.IngredientRepository,
	orderRepo repository.OrderRepository,
	policy ledger.AlertPolicy,
) *UseCase {
	return &UseCase{
		ingredientRepo: ingredientRepo,
		orderRepo:      orderRepo,
		policy:         policy,
	}
}

// Evaluate deriva las alertas vigentes, ya ordenadas por severidad.
func (uc *UseCase) Evaluate(ctx context.Context) (*dto.AlertListResponse, error) {
	ingredients, err := uc.ingredientRepo.ListAll()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.ListAll()
	if err != nil {
		return nil, err
	}

	alerts := uc.policy.DeriveAlerts(ingredients, orders)
	out := &dto.AlertListResponse{Items: make([]dto.AlertResponse, 0, len(alerts))}
	for _, a := range alerts {
		if a.ActionRequired {
			out.ActionRequired++
		}
		out.Items = append(out.Items, toAlertResponse(a))
	}
	return out, nil
}

func toAlertResponse(a entity.Alert) dto.AlertResponse {
	return dto.AlertResponse{
		Type:           a.Type,
		Title:          a.Title,
		Message:        a.Message,
		Severity:       a.Severity,
		Timestamp:      a.Timestamp,
		IngredientID:   a.IngredientID,
		OrderID:        a.OrderID,
		ActionRequired: a.ActionRequired,
	}
}
