package handlers

import (
	"net/http"

	intconfig "railway/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "railway backend running"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		respondFailure(c, http.StatusInternalServerError, "database not connected")
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM trains").Scan(&count); err != nil {
		respondFailure(c, http.StatusInternalServerError, "database query failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "trains_in_db": count})
}
