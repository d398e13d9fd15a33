package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/contest-api/internal/pkg/errors"
)

// handleServiceError транслирует ошибки сервисного слоя в HTTP-ответы.
// Валидация -> 400 с деталями, не найдено -> 404, конфликт -> 409,
// всё остальное -> 500 с общим сообщением без внутренних подробностей.
func handleServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": validationDetails(err),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("[Handler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// validationDetails убирает префикс сентинельной ошибки,
// оставляя клиенту только описание поля
func validationDetails(err error) string {
	return strings.TrimPrefix(err.Error(), apperrors.ErrValidation.Error()+": ")
}
