package validator

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type CustomValidator struct {
	validator *validator.Validate
	ranges    map[reflect.Type][]rangeRule
}

// rangeRule is an inclusive numeric bound checked at struct level, so it can
// come from configuration instead of a struct tag.
type rangeRule struct {
	field string
	name  string
	min   float64
	max   float64
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return &CustomValidator{
		validator: v,
		ranges:    make(map[reflect.Type][]rangeRule),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// RegisterRange requires the numeric field (or pointer to one) of structType to
// lie within [min, max]. Nil pointers are skipped; pair with "required" to
// reject them. Not safe to call concurrently with Validate.
func (cv *CustomValidator) RegisterRange(structType interface{}, field string, min, max float64) {
	t := reflect.TypeOf(structType)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	name := field
	if sf, ok := t.FieldByName(field); ok {
		if n := jsonFieldName(sf); n != "" {
			name = n
		}
	}

	cv.ranges[t] = append(cv.ranges[t], rangeRule{field: field, name: name, min: min, max: max})
	rules := append([]rangeRule(nil), cv.ranges[t]...)

	cv.validator.RegisterStructValidation(func(sl validator.StructLevel) {
		current := sl.Current()
		for _, rule := range rules {
			fv := current.FieldByName(rule.field)
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}

			value, ok := numericValue(fv)
			if !ok {
				continue
			}
			if value < rule.min || value > rule.max {
				sl.ReportError(fv.Interface(), rule.name, rule.field, "range", formatBound(rule.min)+" and "+formatBound(rule.max))
			}
		}
	}, reflect.New(t).Elem().Interface())
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "range":
				errors[field] = field + " must be between " + e.Param()
			case "notblank":
				errors[field] = field + " must not be blank"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func jsonFieldName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

func numericValue(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
