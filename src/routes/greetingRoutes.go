package routes

import (
	"github.com/SampleSite/SampleSite-Backend/src/controllers"
	"github.com/SampleSite/SampleSite-Backend/src/metrics"
	"github.com/gin-gonic/gin"
)

func SetupGreetingRoutes(router *gin.Engine) {
	greetingController := controllers.NewGreetingController()

	router.GET("/", greetingController.HelloWorld)
}

func SetupMetricsRoutes(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
