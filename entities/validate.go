package entities

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// report json names so messages line up with form and API fields
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// Validate runs struct-tag validation on any value.
func Validate(s any) error { return validate.Struct(s) }

// FieldErrors maps a json field name to a user-facing message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fe[k])
	}
	return strings.Join(msgs, "; ")
}

var inputMessages = map[string]string{
	"location":         "Location is required",
	"avg_temp_c":       "Temperature must be between -50°C and 60°C",
	"humidity_pct":     "Humidity must be between 0 and 100%",
	"vertical_space_m": "Space must be more than 0 and at most 100 m",
	"light_source":     "Light source must be one of natural, led, fluorescent, mixed",
	"width_m":          "Width must be more than 0 and at most 100 m",
	"depth_m":          "Depth must be more than 0 and at most 100 m",
}

// ValidateInput checks the caller-side preconditions of the planning
// pipeline. It returns FieldErrors or nil.
func ValidateInput(in UserInput) error {
	in.Location = strings.TrimSpace(in.Location)
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		msg, ok := inputMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		out[fe.Field()] = msg
	}
	return out
}
