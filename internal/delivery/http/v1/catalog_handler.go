package v1

import (
	"errors"
	"net/http"

	"go-acoustics-backend/internal/delivery/http/response"
	"go-acoustics-backend/internal/domain"
	"go-acoustics-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

// NewCatalogHandler registers the service and image catalog routes.
func NewCatalogHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &CatalogHandler{
		catalogUC: catalogUC,
	}

	public.GET("/services", handler.ListServices)
	public.GET("/services/:slug", handler.GetService)
	public.GET("/images/:id", handler.GetImage)
}

// ListServices godoc
// @Summary      List Services
// @Description  Returns the service cards used by navigation and the home page.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ServiceCard}
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	cards := h.catalogUC.ListServices(c.Request.Context())
	response.Success(c, http.StatusOK, "Services retrieved", cards)
}

// GetService godoc
// @Summary      Get Service Detail
// @Description  Returns one service with its long description split into paragraphs and its resolved hero image.
// @Tags         catalog
// @Produce      json
// @Param        slug  path  string  true  "Service slug"
// @Success      200  {object}  response.Response{data=domain.ServiceDetail}
// @Failure      404  {object}  response.Response
// @Router       /services/{slug} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	detail, err := h.catalogUC.GetService(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			c.Error(apperror.NotFound("Service not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Service retrieved", detail)
}

// GetImage godoc
// @Summary      Resolve Placeholder Image
// @Description  Resolves a logical image id to its asset source. When a variant is requested but absent the other variant is used, then the flat source. Unknown ids return 404 with a fallback asset the caller can substitute.
// @Tags         catalog
// @Produce      json
// @Param        id       path   string  true   "Image id"
// @Param        variant  query  string  false  "Variant selector"  Enums(desktop, mobile)
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /images/{id} [get]
func (h *CatalogHandler) GetImage(c *gin.Context) {
	id := c.Param("id")
	variant := domain.VariantKind(c.Query("variant"))

	switch variant {
	case domain.VariantNone, domain.VariantDesktop, domain.VariantMobile:
	default:
		c.Error(apperror.BadRequest("Unknown variant; use desktop or mobile"))
		return
	}

	if variant == domain.VariantNone {
		img, err := h.catalogUC.GetImage(c.Request.Context(), id)
		if err != nil {
			h.imageNotFound(c)
			return
		}
		response.Success(c, http.StatusOK, "Image resolved", img)
		return
	}

	src, err := h.catalogUC.ResolveImage(c.Request.Context(), id, variant)
	if err != nil {
		h.imageNotFound(c)
		return
	}
	response.Success(c, http.StatusOK, "Image resolved", src)
}

// imageNotFound returns 404 together with the fallback asset so consumers can
// degrade to a placeholder instead of rendering a broken image.
func (h *CatalogHandler) imageNotFound(c *gin.Context) {
	fallback := h.catalogUC.FallbackImage(c.Request.Context())
	response.Error(c, http.StatusNotFound, "Image not found", gin.H{"fallback": fallback})
}
