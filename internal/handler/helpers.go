package handler

import (
	"net/http"
	"reflect"

	"github.com/Sijj2003/app-tienda/internal/apierror"
	"github.com/Sijj2003/app-tienda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = validate.RegisterValidation("metodo_pago_venta", func(fl validator.FieldLevel) bool {
		return contieneStr(service.MetodosPagoVenta, fl.Field().String())
	})
	_ = validate.RegisterValidation("metodo_pago_avance", func(fl validator.FieldLevel) bool {
		return contieneStr(service.MetodosPagoAvance, fl.Field().String())
	})
	_ = validate.RegisterValidation("telefono_ve", func(fl validator.FieldLevel) bool {
		return service.TelefonoValido(fl.Field().String())
	})
}

func contieneStr(valores []string, v string) bool {
	for _, x := range valores {
		if x == v {
			return true
		}
	}
	return false
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}
