package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/application/usecase"
	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre (sin distinguir mayúsculas)"
// @Success      200     {array}   dto.ProductResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, h.log, err, errMsgs{internal: "Error fetching products"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{internal: "Error fetching product"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Product not found"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Description  Acepta JSON o multipart/form-data con el archivo en el campo "image".
// @Tags         products
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var (
		in    dto.CreateProductRequest
		image *dto.ImageUpload
		err   error
	)
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		in, image, err = parseProductForm(c)
		if image != nil {
			if closer, ok := image.Body.(interface{ Close() error }); ok {
				defer closer.Close()
			}
		}
		if err == nil {
			err = validateStruct(&in)
		}
	} else {
		err = bindJSON(c, &in)
	}
	if err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}

	out, err := h.uc.Create(c.UserContext(), in, image)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{internal: "Error creating product"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	var in dto.UpdateProductRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	if _, err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, h.log, err, errMsgs{notFound: "Product not found", internal: "Error updating product"})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Product %d updated", id)})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err, errMsgs{notFound: "Product not found", internal: "Error deleting product"})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Product %d deleted", id)})
}

// parseProductForm lee los campos de un POST multipart y el archivo opcional "image".
func parseProductForm(c *fiber.Ctx) (dto.CreateProductRequest, *dto.ImageUpload, error) {
	in := dto.CreateProductRequest{Name: c.FormValue("name")}

	if v := strings.TrimSpace(c.FormValue("price")); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return in, nil, domain.NewValidationError("price must be a number")
		}
		in.Price = &price
	}
	if v := strings.TrimSpace(c.FormValue("stock")); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return in, nil, domain.NewValidationError("stock must be an integer")
		}
		in.Stock = stock
	}
	if v := strings.TrimSpace(c.FormValue("category_id")); v != "" {
		cid, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return in, nil, domain.NewValidationError("category_id must be an integer")
		}
		in.CategoryID = &cid
	}
	in.Description = optionalForm(c, "description")
	in.Barcode = optionalForm(c, "barcode")
	in.ImageURL = optionalForm(c, "image_url")

	fh, err := c.FormFile("image")
	if err != nil {
		// sin archivo: producto sin imagen subida
		return in, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return in, nil, &domain.UploadError{Err: err}
	}
	return in, &dto.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	}, nil
}

func optionalForm(c *fiber.Ctx, key string) *string {
	v := c.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}
