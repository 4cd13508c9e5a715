package handlers

import (
	response "material_estimator/internal/adapter/http/dto/response"
	"material_estimator/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only pricing tables.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// GetStyleMaterials godoc
// @Summary      List the materials of a design style
// @Tags         catalog
// @Produce      json
// @Param        style  path      string  true  "Modern, Classic or Rustic"
// @Success      200    {object}  response.CatalogStyleResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /catalog/styles/{style} [get]
func (h *CatalogHandler) GetStyleMaterials(c *gin.Context) {
	style := c.Param("style")
	entries, err := h.usecase.Materials(c.Request.Context(), style)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CatalogStyleResponse{DesignStyle: style, Materials: entries})
}

// GetComponentImpacts godoc
// @Summary      Component impact table and keyword rules
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.ComponentImpactsResponse
// @Router       /catalog/components [get]
func (h *CatalogHandler) GetComponentImpacts(c *gin.Context) {
	components, rules := h.usecase.ComponentImpacts(c.Request.Context())
	c.JSON(http.StatusOK, response.ComponentImpactsResponse{Components: components, Rules: rules})
}
