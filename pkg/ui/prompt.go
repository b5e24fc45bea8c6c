package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/plan/types"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl-C or Ctrl-D.
var ErrCancelled = errors.New("cancelled")

// Prompter asks the user for single values.
type Prompter interface {
	Ask(label, def string, validate func(string) error) (string, error)
	Choose(label string, items []string) (int, error)
}

// PromptUI is the terminal Prompter.
type PromptUI struct{}

func (PromptUI) Ask(label, def string, validate func(string) error) (string, error) {
	p := promptui.Prompt{Label: label, Default: def, Validate: validate}
	v, err := p.Run()
	return v, mapPromptErr(err)
}

func (PromptUI) Choose(label string, items []string) (int, error) {
	s := promptui.Select{Label: label, Items: items, Size: len(items)}
	i, _, err := s.Run()
	return i, mapPromptErr(err)
}

func mapPromptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrCancelled
	}
	return err
}

type question struct {
	key   string // form field name
	label string
	def   string
	dst   *string
}

// CollectInput fills every blank field of f by asking the user, then
// converts the result. Values given up front are not asked for again, so
// an invalid one is reported as an error.
func CollectInput(p Prompter, f types.PlanForm) (entities.UserInput, error) {
	questions := []question{
		{"location", "Location (city, country)", "", &f.Location},
		{"avgTemp", "Average temperature (°C)", "", &f.AvgTemp},
		{"humidity", "Average humidity (%)", "", &f.Humidity},
	}
	for _, q := range questions {
		if err := ask(p, f, q); err != nil {
			return entities.UserInput{}, err
		}
	}

	if f.LightSource == "" {
		labels := make([]string, len(entities.LightSources))
		for i, l := range entities.LightSources {
			labels[i] = l.Label()
		}
		i, err := p.Choose("Light source", labels)
		if err != nil {
			return entities.UserInput{}, err
		}
		f.LightSource = string(entities.LightSources[i])
	}

	questions = []question{
		{"space", "Vertical space available (m)", fmt.Sprint(entities.DefaultVerticalSpaceM), &f.Space},
		{"farmWidth", "Farm width (m)", fmt.Sprint(entities.DefaultWidthM), &f.FarmWidth},
		{"farmDepth", "Farm depth (m)", fmt.Sprint(entities.DefaultDepthM), &f.FarmDepth},
	}
	for _, q := range questions {
		if err := ask(p, f, q); err != nil {
			return entities.UserInput{}, err
		}
	}

	in, errs := f.ToInput()
	if errs != nil {
		return entities.UserInput{}, errs
	}
	return in, nil
}

func ask(p Prompter, f types.PlanForm, q question) error {
	if *q.dst != "" {
		return nil
	}
	v, err := p.Ask(q.label, q.def, fieldValidator(f, q))
	if err != nil {
		return err
	}
	*q.dst = v
	return nil
}

// fieldValidator checks one answer with the same rules as the web form.
func fieldValidator(f types.PlanForm, q question) func(string) error {
	return func(s string) error {
		probe := f
		switch q.key {
		case "location":
			probe.Location = s
		case "avgTemp":
			probe.AvgTemp = s
		case "humidity":
			probe.Humidity = s
		case "space":
			probe.Space = s
		case "farmWidth":
			probe.FarmWidth = s
		case "farmDepth":
			probe.FarmDepth = s
		}
		if _, errs := probe.ToInput(); errs != nil {
			if msg, ok := errs[q.key]; ok {
				return errors.New(msg)
			}
		}
		return nil
	}
}
