package controllers

import (
	"net/http"

	"github.com/SampleSite/SampleSite-Backend/src/logger"
	"github.com/SampleSite/SampleSite-Backend/src/models"
	"github.com/SampleSite/SampleSite-Backend/src/services"
	"github.com/SampleSite/SampleSite-Backend/src/views"
	"github.com/gin-gonic/gin"
)

type FormController[T models.Record] struct {
	flow *services.FormFlowService[T]
}

func NewFormController[T models.Record](flow *services.FormFlowService[T]) *FormController[T] {
	return &FormController[T]{flow: flow}
}

// ShowForm handles GET requests by rendering an empty form
func (c *FormController[T]) ShowForm(ctx *gin.Context) {
	result := c.flow.Display()
	ctx.HTML(http.StatusOK, views.FormTemplate, gin.H{"form": result.Form})
}

// SubmitForm handles POST requests: invalid input re-renders the form with
// errors, valid input is stored and an empty form is rendered
func (c *FormController[T]) SubmitForm(ctx *gin.Context) {
	values := make(map[string]string)
	for _, name := range c.flow.FieldNames() {
		values[name] = ctx.PostForm(name)
	}

	result, err := c.flow.Submit(ctx.Request.Context(), values)
	if err != nil {
		logger.FromContext(ctx.Request.Context()).WithError(err).Error("storing form submission failed")
		_ = ctx.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	ctx.HTML(http.StatusOK, views.FormTemplate, gin.H{"form": result.Form})
}
