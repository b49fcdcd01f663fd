package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Pasiduchamod/CompareShop/internal/repository"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response. Probes the persistence
// backend with a read; the engine itself is in-memory and always healthy.
func Health(store repository.KVStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storeStatus := "connected"
		if _, err := store.Load(ctx, repository.KeyCurrency); err != nil {
			storeStatus = "error"
		}

		status := http.StatusOK
		if storeStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"store": storeStatus,
		})
	}
}
