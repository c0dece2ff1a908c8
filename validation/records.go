package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"gestaobikes/locale"
	"gestaobikes/schemas"

	"github.com/go-playground/validator/v10"
)

var birthDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Errors collects field-level failures of one submitted record.
type Errors []schemas.FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// fieldMessages is what the operator sees when a field fails any rule other
// than a max length. Keys are the json field names.
var fieldMessages = map[string]string{
	schemas.CONTACT_FIELD_NAME:           "Nome é obrigatório",
	schemas.CONTACT_FIELD_PHONE:          "Telefone inválido. Use formato (00) 00000-0000",
	schemas.CONTACT_FIELD_FULL_NAME:      "Nome completo deve ter pelo menos 3 caracteres",
	schemas.CONTACT_FIELD_DOCUMENT:       "CPF inválido",
	schemas.CONTACT_FIELD_BIRTH_DATE:     "Data deve estar no formato DD/MM/AAAA",
	schemas.CONTACT_FIELD_MARITAL_STATUS: "Estado civil inválido",
	schemas.CONTACT_FIELD_STAGE:          "Estágio inválido",
	schemas.CONTACT_FIELD_PAUSE_AI:       "Valor inválido para pausar IA",

	schemas.BIKE_FIELD_MODEL:            "Modelo deve ter pelo menos 3 caracteres",
	schemas.BIKE_FIELD_PRICE:            "Valor é obrigatório",
	schemas.BIKE_FIELD_RANGE:            "Autonomia é obrigatória",
	schemas.BIKE_FIELD_LOAD_CAPACITY:    "Capacidade é obrigatória",
	schemas.BIKE_FIELD_LICENSE_REQUIRED: "Informe se precisa de CNH (sim ou não)",
	schemas.BIKE_FIELD_PHOTO_1:          "URL inválida",
	schemas.BIKE_FIELD_PHOTO_2:          "URL inválida",
	schemas.BIKE_FIELD_PHOTO_3:          "URL inválida",
	schemas.BIKE_FIELD_VIDEO:            "URL inválida",
	schemas.BIKE_FIELD_STATUS:           "Status é obrigatório",

	schemas.SALE_FIELD_CUSTOMER_NAME:  "Nome deve ter pelo menos 3 caracteres",
	schemas.SALE_FIELD_CUSTOMER_PHONE: "Telefone inválido",
	schemas.SALE_FIELD_BIKE_ID:        "Selecione uma bike válida",
	schemas.SALE_FIELD_BIKE_MODEL:     "Modelo é obrigatório",
	schemas.SALE_FIELD_FINAL_AMOUNT:   "Valor final é obrigatório",
	schemas.SALE_FIELD_DOWN_PAYMENT:   "Valor de entrada é obrigatório para vendas financiadas",
	schemas.SALE_FIELD_SALE_DATE:      "Data da venda deve estar no formato DD-MM-AAAA",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Errors carry the stored field names, not the Go ones.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]func(string) bool{
		"phone":     IsValidPhone,
		"cpf":       IsValidCPF,
		"birthdate": birthDatePattern.MatchString,
		"stage":     func(s string) bool { return schemas.Stage(s).Known() },
		"amount":    func(s string) bool { return locale.NormalizeAmount(s) != "" },
		"storedate": func(s string) bool {
			_, err := time.Parse(locale.DATE_LAYOUT_STORE, s)
			return err == nil
		},
	}
	for tag, fn := range custom {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("register %s validator: %v", tag, err))
		}
	}

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		sale := sl.Current().Interface().(schemas.Sale)
		if sale.Financed && locale.NormalizeAmount(sale.DownPayment) == "" {
			sl.ReportError(sale.DownPayment, schemas.SALE_FIELD_DOWN_PAYMENT, "DownPayment", "required_if", "financiado")
		}
	}, schemas.Sale{})

	return v
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "max" {
		return fmt.Sprintf("Máximo de %s caracteres", fe.Param())
	}
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	return "Valor inválido"
}

func check(record any) Errors {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return Errors{{Message: err.Error()}}
	}

	errs := make(Errors, 0, len(failures))
	for _, fe := range failures {
		errs = append(errs, schemas.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return errs
}

// ValidateContact checks a contact submission. A nil result means valid.
func ValidateContact(c schemas.Contact) Errors {
	return check(c)
}

// ValidateBike checks a bike submission. A nil result means valid.
func ValidateBike(b schemas.Bike) Errors {
	return check(b)
}

// ValidateSale checks a sale submission, including the down payment a
// financed sale needs. A nil result means valid.
func ValidateSale(s schemas.Sale) Errors {
	return check(s)
}
