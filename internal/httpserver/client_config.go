package httpserver

import (
	"github.com/gin-gonic/gin"

	"poster-events/pkg/response"
)

type clientConfigResp struct {
	CalendarName string `json:"calendar_name"`
	Timezone     string `json:"timezone"`
	ProductID    string `json:"product_id"`
}

// clientConfig returns the calendar export settings used by the browser client
// @Summary Client settings
// @Description Calendar export settings for the browser client
// @Tags Web
// @Produce json
// @Success 200 {object} clientConfigResp
// @Router /api/client-config [get]
func (srv HTTPServer) clientConfig(c *gin.Context) {
	response.OK(c, clientConfigResp{
		CalendarName: srv.calendar.Name,
		Timezone:     srv.calendar.Timezone,
		ProductID:    srv.calendar.ProductID,
	})
}
