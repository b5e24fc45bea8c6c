package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhilm2223/vertical-farmingg/entities"
)

func ptr(v float64) *float64 { return &v }

func TestPlanFormDefaults(t *testing.T) {
	in, errs := PlanForm{
		Location:    "  Oslo ",
		AvgTemp:     "4",
		Humidity:    "55",
		LightSource: "LED grow lights",
	}.ToInput()
	require.Nil(t, errs)
	assert.Equal(t, entities.UserInput{
		Location:       "Oslo",
		AvgTempC:       4,
		HumidityPct:    55,
		VerticalSpaceM: entities.DefaultVerticalSpaceM,
		LightSource:    entities.LightLED,
		WidthM:         entities.DefaultWidthM,
		DepthM:         entities.DefaultDepthM,
	}, in)
}

func TestPlanFormErrorsUseFormNames(t *testing.T) {
	_, errs := PlanForm{
		AvgTemp:     "hot",
		Humidity:    "120",
		Space:       "0",
		LightSource: "LEDs",
		FarmWidth:   "-1",
		FarmDepth:   "1",
	}.ToInput()
	require.NotNil(t, errs)
	assert.Equal(t, entities.FieldErrors{
		"location":    "Location is required",
		"avgTemp":     "Must be a number",
		"humidity":    "Humidity must be between 0 and 100%",
		"space":       "Space must be more than 0 and at most 100 m",
		"lightSource": "Light source must be one of natural, led, fluorescent, mixed",
		"farmWidth":   "Width must be more than 0 and at most 100 m",
	}, errs)
}

func TestPlanFormRequiresTemperature(t *testing.T) {
	_, errs := PlanForm{Location: "x", Humidity: "50", LightSource: "natural"}.ToInput()
	require.NotNil(t, errs)
	assert.Equal(t, "Must be a number", errs["avgTemp"])
}

func TestPlanRequestDefaultsAndErrors(t *testing.T) {
	in, errs := PlanRequest{
		Location:    "Cairo",
		AvgTempC:    ptr(35),
		HumidityPct: ptr(20),
		LightSource: "fluorescent",
		WidthM:      ptr(2),
	}.ToInput()
	require.Nil(t, errs)
	assert.Equal(t, 2.0, in.VerticalSpaceM)
	assert.Equal(t, 2.0, in.WidthM)
	assert.Equal(t, 1.0, in.DepthM)
	assert.Equal(t, entities.LightFluorescent, in.LightSource)

	_, errs = PlanRequest{Location: "Cairo", LightSource: "sun", DepthM: ptr(0)}.ToInput()
	require.NotNil(t, errs)
	assert.Equal(t, "Temperature is required", errs["avg_temp_c"])
	assert.Equal(t, "Humidity is required", errs["humidity_pct"])
	assert.Equal(t, "Light source must be one of natural, led, fluorescent, mixed", errs["light_source"])
	assert.Equal(t, "Depth must be more than 0 and at most 100 m", errs["depth_m"])
	assert.NotContains(t, errs, "location")
}
