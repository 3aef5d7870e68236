package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
)

// currentUserID lê o admin autenticado do contexto (nil fora das rotas protegidas)
func currentUserID(c *gin.Context) *uint {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}

	id, ok := v.(uint)
	if !ok {
		return nil
	}

	return &id
}

// writeAudit registra mutações administrativas sem bloquear a resposta
func writeAudit(
	c *gin.Context,
	dispatcher *audit.Dispatcher,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) {
	dispatcher.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	})
}
