package types

import (
	"strconv"
	"strings"

	"github.com/akhilm2223/vertical-farmingg/entities"
)

// PlanForm is the HTML form payload. Values stay as text so the form can be
// re-rendered unchanged when validation fails.
type PlanForm struct {
	Location    string `form:"location"`
	AvgTemp     string `form:"avgTemp"`
	Humidity    string `form:"humidity"`
	Space       string `form:"space"`
	LightSource string `form:"lightSource"`
	FarmWidth   string `form:"farmWidth"`
	FarmDepth   string `form:"farmDepth"`
}

// PlanRequest is the JSON API payload. Missing dimensions take defaults.
type PlanRequest struct {
	Location       string   `json:"location"`
	AvgTempC       *float64 `json:"avg_temp_c"`
	HumidityPct    *float64 `json:"humidity_pct"`
	VerticalSpaceM *float64 `json:"vertical_space_m"`
	LightSource    string   `json:"light_source"`
	WidthM         *float64 `json:"width_m"`
	DepthM         *float64 `json:"depth_m"`
}

// ToInput converts and validates the form. Field messages are keyed by the
// form field names.
func (f PlanForm) ToInput() (entities.UserInput, entities.FieldErrors) {
	errs := entities.FieldErrors{}
	in := entities.UserInput{Location: strings.TrimSpace(f.Location)}

	num := func(key, raw string, def *float64, dst *float64) {
		raw = strings.TrimSpace(raw)
		if raw == "" && def != nil {
			*dst = *def
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs[key] = "Must be a number"
			return
		}
		*dst = v
	}
	space, width, depth := entities.DefaultVerticalSpaceM, entities.DefaultWidthM, entities.DefaultDepthM
	num("avgTemp", f.AvgTemp, nil, &in.AvgTempC)
	num("humidity", f.Humidity, nil, &in.HumidityPct)
	num("space", f.Space, &space, &in.VerticalSpaceM)
	num("farmWidth", f.FarmWidth, &width, &in.WidthM)
	num("farmDepth", f.FarmDepth, &depth, &in.DepthM)

	if ls, err := entities.ParseLightSource(f.LightSource); err == nil {
		in.LightSource = ls
	} else {
		errs["lightSource"] = lightMessage
	}

	mergeValidation(errs, in, formNames)
	if len(errs) > 0 {
		return in, errs
	}
	return in, nil
}

// ToInput converts and validates the API payload. Field messages are keyed
// by the json names of UserInput.
func (r PlanRequest) ToInput() (entities.UserInput, entities.FieldErrors) {
	errs := entities.FieldErrors{}
	in := entities.UserInput{
		Location:       strings.TrimSpace(r.Location),
		VerticalSpaceM: orDefault(r.VerticalSpaceM, entities.DefaultVerticalSpaceM),
		WidthM:         orDefault(r.WidthM, entities.DefaultWidthM),
		DepthM:         orDefault(r.DepthM, entities.DefaultDepthM),
	}
	if r.AvgTempC == nil {
		errs["avg_temp_c"] = "Temperature is required"
	} else {
		in.AvgTempC = *r.AvgTempC
	}
	if r.HumidityPct == nil {
		errs["humidity_pct"] = "Humidity is required"
	} else {
		in.HumidityPct = *r.HumidityPct
	}
	if ls, err := entities.ParseLightSource(r.LightSource); err == nil {
		in.LightSource = ls
	} else {
		errs["light_source"] = lightMessage
	}

	mergeValidation(errs, in, nil)
	if len(errs) > 0 {
		return in, errs
	}
	return in, nil
}

const lightMessage = "Light source must be one of natural, led, fluorescent, mixed"

// formNames maps UserInput json names onto the HTML form field names.
var formNames = map[string]string{
	"location":         "location",
	"avg_temp_c":       "avgTemp",
	"humidity_pct":     "humidity",
	"vertical_space_m": "space",
	"light_source":     "lightSource",
	"width_m":          "farmWidth",
	"depth_m":          "farmDepth",
}

// mergeValidation adds range errors for fields that parsed. Earlier parse
// errors win.
func mergeValidation(errs entities.FieldErrors, in entities.UserInput, rename map[string]string) {
	err := entities.ValidateInput(in)
	fe, ok := err.(entities.FieldErrors)
	if !ok {
		return
	}
	for k, msg := range fe {
		if rename != nil {
			k = rename[k]
		}
		if _, seen := errs[k]; !seen {
			errs[k] = msg
		}
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
