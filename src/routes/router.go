package routes

import (
	"github.com/SampleSite/SampleSite-Backend/src/middleware"
	"github.com/SampleSite/SampleSite-Backend/src/views"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the gin engine with the shared middleware and templates.
func NewRouter(log logrus.FieldLogger, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.Metrics(),
		middleware.SetupCORS(allowedOrigins),
	)
	router.SetHTMLTemplate(views.Templates())
	return router
}
