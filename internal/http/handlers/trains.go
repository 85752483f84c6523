package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	intconfig "railway/internal/config"
	"railway/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/trains
func GetTrains(c *gin.Context) {
	trains := repositories.TrainRepository{DB: intconfig.DB}

	list, err := trains.List()
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Failed to fetch trains")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(list),
		"data":    list,
	})
}

// GET /api/trains/search?source=&destination=&class_type=
func SearchTrains(c *gin.Context) {
	source := strings.TrimSpace(c.Query("source"))
	destination := strings.TrimSpace(c.Query("destination"))
	if source == "" || destination == "" {
		respondFailure(c, http.StatusBadRequest, "Source and destination are required")
		return
	}

	trains := repositories.TrainRepository{DB: intconfig.DB}

	list, err := trains.Search(source, destination, strings.TrimSpace(c.Query("class_type")))
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Failed to search trains")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(list),
		"data":    list,
	})
}

// GET /api/trains/:id
func GetTrainByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondFailure(c, http.StatusBadRequest, "Invalid train id")
		return
	}

	trains := repositories.TrainRepository{DB: intconfig.DB}

	train, err := trains.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondFailure(c, http.StatusNotFound, "Train not found")
			return
		}
		respondFailure(c, http.StatusInternalServerError, "Failed to fetch train details")
		return
	}

	route, err := trains.Route(id)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Failed to fetch route details")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"train": train,
			"route": route,
		},
	})
}
