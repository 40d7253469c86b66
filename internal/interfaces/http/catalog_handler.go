package http

import (
	"bytes"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/stock"
)

// maxImportSize tamaño máximo del CSV de catálogo.
const maxImportSize = 10 << 20

// CatalogHandler ingesta del catálogo (protegido).
type CatalogHandler struct {
	uc *stock.ImportUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *stock.ImportUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Import godoc
// @Summary      Importar catálogo desde CSV
// @Description  Acepta multipart (campo "file") o un cuerpo text/csv. Cabecera: sku,name,price,manage_stock,quantity.
// @Tags         catalog
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "CSV de catálogo"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/import [post]
func (h *CatalogHandler) Import(c *fiber.Ctx) error {
	var r io.Reader
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file requerido"})
		}
		if fh.Size > maxImportSize {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera 10 MB"})
		}
		f, err := fh.Open()
		if err != nil {
			return invalidBody(c)
		}
		defer f.Close()
		r = f
	} else {
		if len(c.Body()) == 0 {
			return invalidBody(c)
		}
		r = bytes.NewReader(c.Body())
	}

	out, err := h.uc.Import(c.UserContext(), r)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
