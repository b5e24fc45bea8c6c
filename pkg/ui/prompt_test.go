package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/plan/types"
)

// scripted answers prompts from a map keyed by label and records what was
// asked. Answers are run through the validator first.
type scripted struct {
	answers map[string]string
	choice  int
	asked   []string
	invalid map[string]string
	err     error
}

func (s *scripted) Ask(label, def string, validate func(string) error) (string, error) {
	s.asked = append(s.asked, label)
	if s.err != nil {
		return "", s.err
	}
	if bad, ok := s.invalid[label]; ok {
		if err := validate(bad); err == nil {
			return "", errors.New("validator accepted " + bad)
		}
	}
	v, ok := s.answers[label]
	if !ok {
		v = def
	}
	if err := validate(v); err != nil {
		return "", err
	}
	return v, nil
}

func (s *scripted) Choose(label string, items []string) (int, error) {
	s.asked = append(s.asked, label)
	if s.err != nil {
		return 0, s.err
	}
	return s.choice, nil
}

func TestCollectInputAsksEverything(t *testing.T) {
	p := &scripted{
		answers: map[string]string{
			"Location (city, country)": "Lyon, France",
			"Average temperature (°C)": "22",
			"Average humidity (%)":     "60",
		},
		choice: 1,
		invalid: map[string]string{
			"Average temperature (°C)":     "61",
			"Average humidity (%)":         "abc",
			"Location (city, country)":     "   ",
			"Vertical space available (m)": "0",
		},
	}
	in, err := CollectInput(p, types.PlanForm{})
	require.NoError(t, err)
	assert.Equal(t, entities.UserInput{
		Location: "Lyon, France", AvgTempC: 22, HumidityPct: 60,
		VerticalSpaceM: 2, LightSource: entities.LightLED, WidthM: 1, DepthM: 1,
	}, in)
	assert.Len(t, p.asked, 7)
}

func TestCollectInputSkipsGivenValues(t *testing.T) {
	p := &scripted{answers: map[string]string{"Average humidity (%)": "20"}}
	in, err := CollectInput(p, types.PlanForm{
		Location:    "Cairo",
		AvgTemp:     "35",
		LightSource: "fluorescent",
		Space:       "0.9",
		FarmWidth:   "2",
		FarmDepth:   "0.5",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Average humidity (%)"}, p.asked)
	assert.Equal(t, entities.LightFluorescent, in.LightSource)
	assert.Equal(t, 0.9, in.VerticalSpaceM)
}

func TestCollectInputReportsBadPreset(t *testing.T) {
	_, err := CollectInput(&scripted{}, types.PlanForm{
		Location: "x", AvgTemp: "20", Humidity: "50", LightSource: "torch",
		Space: "1", FarmWidth: "1", FarmDepth: "1",
	})
	var fe entities.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "lightSource")
}

func TestCollectInputCancelled(t *testing.T) {
	_, err := CollectInput(&scripted{err: ErrCancelled}, types.PlanForm{})
	assert.ErrorIs(t, err, ErrCancelled)
}
