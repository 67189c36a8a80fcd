package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SampleSite/SampleSite-Backend/src/models"
	"github.com/SampleSite/SampleSite-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type RecordController[T models.Record] struct {
	store services.RecordStore[T]
}

func NewRecordController[T models.Record](store services.RecordStore[T]) *RecordController[T] {
	return &RecordController[T]{store: store}
}

// GetRecordByID handles GET requests to retrieve a record by ID
func (c *RecordController[T]) GetRecordByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	record, err := c.store.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, record)
}
