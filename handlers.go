package main

import (
	"github.com/gin-gonic/gin"
)

// @Summary Clear the cache
// @Description Removes every cached entry unconditionally; subsequent product reads go back to the upstream source
// @Tags cache
// @Produce json
// @Success 200 {object} interface{} "Cache cleared"
// @Router /cache/clear [post]
func (a *App) handleClearCache(c *gin.Context) {
	a.cache.Clear()
	a.responseHandler.SuccessResponse(c, nil, "Cache cleared")
}
