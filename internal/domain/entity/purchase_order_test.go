package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_FlujosPermitidos(t *testing.T) {
	permitidos := [][2]string{
		{PurchaseOrderStatusDraft, PurchaseOrderStatusPending},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusCancelled},
		{PurchaseOrderStatusPending, PurchaseOrderStatusConfirmed},
		{PurchaseOrderStatusPending, PurchaseOrderStatusCancelled},
		{PurchaseOrderStatusConfirmed, PurchaseOrderStatusReceived},
		{PurchaseOrderStatusConfirmed, PurchaseOrderStatusCancelled},
	}
	for _, c := range permitidos {
		assert.True(t, CanTransition(c[0], c[1]), "%s → %s debe permitirse", c[0], c[1])
	}
}

func TestCanTransition_FlujosProhibidos(t *testing.T) {
	prohibidos := [][2]string{
		{PurchaseOrderStatusDraft, PurchaseOrderStatusConfirmed}, // no se salta pending
		{PurchaseOrderStatusDraft, PurchaseOrderStatusReceived},
		{PurchaseOrderStatusPending, PurchaseOrderStatusReceived},
		{PurchaseOrderStatusPending, PurchaseOrderStatusDraft}, // no hay retroceso
		{PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled}, // terminal
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusPending},  // terminal
		{PurchaseOrderStatusReceived, PurchaseOrderStatusReceived},
	}
	for _, c := range prohibidos {
		assert.False(t, CanTransition(c[0], c[1]), "%s → %s debe rechazarse", c[0], c[1])
	}
}
