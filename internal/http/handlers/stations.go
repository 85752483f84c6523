package handlers

import (
	"net/http"
	"strings"

	intconfig "railway/internal/config"
	"railway/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/stations
func GetStations(c *gin.Context) {
	stations := repositories.StationRepository{DB: intconfig.DB}

	list, err := stations.List()
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Failed to fetch stations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(list),
		"data":    list,
	})
}

// GET /api/stations/search?query=
func SearchStations(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		respondFailure(c, http.StatusBadRequest, "Search query is required")
		return
	}

	stations := repositories.StationRepository{DB: intconfig.DB}

	list, err := stations.Search(query)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Failed to search stations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(list),
		"data":    list,
	})
}
