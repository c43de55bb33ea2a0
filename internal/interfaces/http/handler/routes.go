package handler

import (
	"github.com/interiors/backend/internal/interfaces/http/router"
)

// SubmissionRoutes creates the route group for submission endpoints
func SubmissionRoutes(h *SubmissionHandler) *router.DomainGroup {
	group := router.NewDomainGroup("submissions", "/submissions")

	group.POST("/classify", h.Classify)
	group.POST("/render", h.Render)
	group.POST("/materials", h.ExtractMaterials)
	group.POST("/material-orders", h.CreateMaterialOrder)
	group.POST("/mark-na", h.MarkNotApplicable)

	return group
}

// SystemRoutes creates the route group for system endpoints
func SystemRoutes(h *SystemHandler) *router.DomainGroup {
	group := router.NewDomainGroup("system", "/system")

	group.GET("/info", h.GetSystemInfo)
	group.GET("/ping", h.Ping)

	return group
}
