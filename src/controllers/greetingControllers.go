package controllers

import (
	"net/http"

	"github.com/SampleSite/SampleSite-Backend/src/logger"
	"github.com/gin-gonic/gin"
)

const greetingHTML = `<html><body><p>Hello world in HTML</p>
<p>Fill in your state details at <a href="/statedetails/">/statedetails/</a></p>
</body></html>`

type GreetingController struct{}

func NewGreetingController() *GreetingController {
	return &GreetingController{}
}

// HelloWorld handles GET requests for the static greeting page
func (c *GreetingController) HelloWorld(ctx *gin.Context) {
	logger.FromContext(ctx.Request.Context()).Warn("Hello world in the log...")
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(greetingHTML))
}
