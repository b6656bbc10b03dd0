package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"financequest/internal/shared"
)

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, shared.ErrBadRequest.WithDetails("field", name)
	}
	return id, nil
}
