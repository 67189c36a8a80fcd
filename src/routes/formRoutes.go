package routes

import (
	"github.com/SampleSite/SampleSite-Backend/src/controllers"
	"github.com/SampleSite/SampleSite-Backend/src/models"
	"github.com/SampleSite/SampleSite-Backend/src/services"
	"github.com/gin-gonic/gin"
)

// SetupFormRoutes mounts the form flow and the record lookup of one record
// kind under prefix.
func SetupFormRoutes[T models.Record](router *gin.Engine, prefix string, store services.RecordStore[T], schema models.Schema[T]) {
	formController := controllers.NewFormController(services.NewFormFlowService(store, schema))
	recordController := controllers.NewRecordController(store)

	group := router.Group(prefix)
	{
		group.GET("/", formController.ShowForm)
		group.POST("/", formController.SubmitForm)
		group.GET("/:id", recordController.GetRecordByID)
	}
}
