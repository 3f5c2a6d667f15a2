package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manager/internal/domain"
)

var validate = newValidator()

// newValidator usa el nombre del tag json en los mensajes (price, category_id, ...).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// bindJSON decodifica el body con el decoder JSON de la app (sin depender del Content-Type) y valida.
func bindJSON(c *fiber.Ctx, dest any) error {
	if err := c.App().Config().JSONDecoder(c.Body(), dest); err != nil {
		return domain.NewValidationError("Invalid JSON data")
	}
	return validateStruct(dest)
}

// validateStruct aplica los tags validate; los destinos que no son struct (ej. map) pasan sin validar.
func validateStruct(dest any) error {
	if reflect.Indirect(reflect.ValueOf(dest)).Kind() != reflect.Struct {
		return nil
	}
	err := validate.Struct(dest)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("Invalid input")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" "+validationMessage(fe))
	}
	return domain.NewValidationError(strings.Join(msgs, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of " + fe.Param()
	}
	return "is invalid"
}

// paramID lee :id (las rutas ya lo restringen a enteros con <int>).
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("Invalid id")
	}
	return int64(id), nil
}
