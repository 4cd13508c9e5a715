package routes

import (
	"material_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimate                 = "/estimate"
	PathEstimateFromComponents   = "/estimate-from-components"
	PathEstimateFromModelChanges = "/estimate-from-model-changes"
	PathCatalog                  = "/catalog"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	rg.POST(PathEstimate, estimateHandler.Estimate)
	rg.POST(PathEstimateFromComponents, estimateHandler.EstimateFromComponents)
	rg.POST(PathEstimateFromModelChanges, estimateHandler.EstimateFromModelChanges)
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/styles/:style", catalogHandler.GetStyleMaterials)
		catalog.GET("/components", catalogHandler.GetComponentImpacts)
	}
}
