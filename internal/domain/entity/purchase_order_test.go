package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// Matriz de transiciones legales de la máquina de estados de órdenes:
// pending -> confirmed -> shipped -> delivered; cancelled solo desde
// pending o confirmed.
func TestCanTransition_Matriz(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusConfirmed, true},
		{entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{entity.OrderStatusPending, entity.OrderStatusShipped, false},
		{entity.OrderStatusPending, entity.OrderStatusDelivered, false},
		{entity.OrderStatusConfirmed, entity.OrderStatusShipped, true},
		{entity.OrderStatusConfirmed, entity.OrderStatusCancelled, true},
		{entity.OrderStatusConfirmed, entity.OrderStatusDelivered, false},
		{entity.OrderStatusConfirmed, entity.OrderStatusPending, false},
		{entity.OrderStatusShipped, entity.OrderStatusDelivered, true},
		{entity.OrderStatusShipped, entity.OrderStatusCancelled, false},
		{entity.OrderStatusDelivered, entity.OrderStatusCancelled, false},
		{entity.OrderStatusDelivered, entity.OrderStatusPending, false},
		{entity.OrderStatusCancelled, entity.OrderStatusPending, false},
		{entity.OrderStatusCancelled, entity.OrderStatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, entity.CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

// from == to es un no-op permitido: guardar una orden sin tocar el estado
// no debe fallar.
func TestCanTransition_MismoEstado(t *testing.T) {
	for _, s := range []string{
		entity.OrderStatusPending, entity.OrderStatusConfirmed,
		entity.OrderStatusShipped, entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	} {
		assert.True(t, entity.CanTransition(s, s), "%s -> %s", s, s)
	}
}

func TestCanTransition_EstadoDesconocido(t *testing.T) {
	assert.False(t, entity.CanTransition("draft", entity.OrderStatusPending))
	assert.False(t, entity.CanTransition(entity.OrderStatusPending, "archived"))
	assert.False(t, entity.ValidOrderStatus("draft"))
}

func TestValidMovementType(t *testing.T) {
	assert.True(t, entity.ValidMovementType(entity.MovementTypeEntrada))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeSaida))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeAjuste))
	assert.False(t, entity.ValidMovementType("transfer"))
	assert.False(t, entity.ValidMovementType(""))
}
