package entities

import (
	"errors"
	"fmt"
	"strings"
)

type LightSource string

const (
	LightNatural     LightSource = "natural"
	LightLED         LightSource = "led"
	LightFluorescent LightSource = "fluorescent"
	LightMixed       LightSource = "mixed"
)

var ErrUnknownLightSource = errors.New("unknown light source")

// LightSources lists the accepted values in the order they are offered to users.
var LightSources = []LightSource{LightNatural, LightLED, LightFluorescent, LightMixed}

var lightLabels = map[LightSource]string{
	LightNatural:     "Natural sunlight",
	LightLED:         "LED grow lights",
	LightFluorescent: "Fluorescent lights",
	LightMixed:       "Mixed (natural + artificial)",
}

func (l LightSource) Label() string {
	if s, ok := lightLabels[l]; ok {
		return s
	}
	return string(l)
}

// ArtificialOnly reports whether the source provides no sunlight at all.
func (l LightSource) ArtificialOnly() bool { return l == LightLED || l == LightFluorescent }

// ParseLightSource maps a user-facing choice onto the enum. Both the enum
// keys and the exact UI labels are accepted, case-insensitively.
func ParseLightSource(s string) (LightSource, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, l := range LightSources {
		if v == string(l) || v == strings.ToLower(lightLabels[l]) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLightSource, s)
}

// Input defaults used when the caller leaves a dimension blank.
const (
	DefaultVerticalSpaceM = 2.0
	DefaultWidthM         = 1.0
	DefaultDepthM         = 1.0
)

type UserInput struct {
	Location       string      `json:"location" validate:"required"`
	AvgTempC       float64     `json:"avg_temp_c" validate:"gte=-50,lte=60"`
	HumidityPct    float64     `json:"humidity_pct" validate:"gte=0,lte=100"`
	VerticalSpaceM float64     `json:"vertical_space_m" validate:"gt=0,lte=100"`
	LightSource    LightSource `json:"light_source" validate:"required,oneof=natural led fluorescent mixed"`
	WidthM         float64     `json:"width_m" validate:"gt=0,lte=100"`
	DepthM         float64     `json:"depth_m" validate:"gt=0,lte=100"`
}
