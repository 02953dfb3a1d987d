package handlers

import (
	"strconv"

	"shareit/models"
	"shareit/services/booking"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

// pageFromQuery reads from/size query parameters.
func pageFromQuery(c *gin.Context, defaultSize int) (models.Page, error) {
	if defaultSize <= 0 {
		defaultSize = defaultPageSize
	}
	fromStr := c.DefaultQuery("from", "0")
	sizeStr := c.DefaultQuery("size", strconv.Itoa(defaultSize))

	from, err := strconv.Atoi(fromStr)
	if err != nil {
		return models.Page{}, booking.NewInvalidPage(fromStr, sizeStr)
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return models.Page{}, booking.NewInvalidPage(fromStr, sizeStr)
	}
	return booking.NewPage(from, size)
}
