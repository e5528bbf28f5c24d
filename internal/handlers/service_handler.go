package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/freshlane/carwash-scheduler/internal/catalog"
	"github.com/freshlane/carwash-scheduler/internal/httpresp"
)

// ServiceHandler exposes the read-only wash-service catalog clients pick
// from when booking.
type ServiceHandler struct {
	catalog catalog.Lookup
}

func NewServiceHandler(cat catalog.Lookup) *ServiceHandler {
	return &ServiceHandler{catalog: cat}
}

func (h *ServiceHandler) List(c *gin.Context) {
	svcs, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, svcs)
}
