package form

import (
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their form names so templates can look errors up directly
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidationErrors maps a form field name to its message.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("invalid fields:")
	for _, k := range keys {
		b.WriteString(" " + k + " (" + e[k] + ")")
	}
	return b.String()
}

var messages = map[string]string{
	"required": "Campo requerido",
	"numeric":  "Debe ser un número",
	"boolean":  "Valor inválido",
}

func check(in any) ValidationErrors {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{"_": err.Error()}
	}
	out := ValidationErrors{}
	for _, fe := range ves {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "Valor inválido"
		}
		out[fe.Field()] = msg
	}
	return out
}

// number parses a value that already passed the numeric tag. ok is false
// when the value does not fit a finite float64.
func number(s string) (float64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// setNumber stores the parsed raw in dst unless field already failed.
// Out of range values become a field error, so they never reach the backend.
func setNumber(errs ValidationErrors, field, raw string, dst *float64) ValidationErrors {
	if _, bad := errs[field]; bad {
		return errs
	}
	f, ok := number(raw)
	if !ok {
		if errs == nil {
			errs = ValidationErrors{}
		}
		errs[field] = messages["numeric"]
		return errs
	}
	*dst = f
	return errs
}

var maxMinutes = decimal.NewFromInt(math.MaxInt32)

// minutes parses a whole number of minutes; ok is false for fractions and
// for values outside the int32 range.
func minutes(s string) (int, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() || d.Abs().GreaterThan(maxMinutes) {
		return 0, false
	}
	return int(d.IntPart()), true
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
