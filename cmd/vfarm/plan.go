package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/climate"
	planSvcImp "github.com/akhilm2223/vertical-farmingg/pkg/plan/serviceImp"
	"github.com/akhilm2223/vertical-farmingg/pkg/plan/types"
	"github.com/akhilm2223/vertical-farmingg/pkg/ui"
)

var errMissingInput = errors.New("missing input")

type planOpts struct {
	location string
	temp     float64
	humidity float64
	space    float64
	light    string
	width    float64
	depth    float64

	json    bool
	noInput bool
	catalog catalogFlags
}

func newPlanCmd(a *app) *cobra.Command {
	o := &planOpts{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Recommend crops and compute quantities for a farm",
		Long: `Builds a farming plan. Any value not given as a flag is asked for
interactively, unless --no-input is set.

Example:
  vfarm plan --location "Lyon, France" --temp 22 --humidity 60 --light natural`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, a, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.location, "location", "", "city and country, e.g. \"Tokyo, Japan\"")
	f.Float64Var(&o.temp, "temp", 0, "average temperature in °C (-50 to 60)")
	f.Float64Var(&o.humidity, "humidity", 0, "average humidity in % (0 to 100)")
	f.Float64Var(&o.space, "space", entities.DefaultVerticalSpaceM, "vertical space in meters")
	f.StringVar(&o.light, "light", "", "light source: natural, led, fluorescent or mixed")
	f.Float64Var(&o.width, "width", entities.DefaultWidthM, "farm width in meters")
	f.Float64Var(&o.depth, "depth", entities.DefaultDepthM, "farm depth in meters")
	f.BoolVar(&o.json, "json", false, "print the plan as JSON")
	f.BoolVar(&o.noInput, "no-input", false, "fail instead of prompting for missing values")
	o.catalog.register(cmd, "", "plan against the catalog stored in this SQLite file")
	return cmd
}

// presetForm turns the flags that were set into form values. Unset flags
// stay blank so they are prompted for.
func presetForm(flags *pflag.FlagSet, o *planOpts) types.PlanForm {
	num := func(name string, v float64) string {
		if !flags.Changed(name) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return types.PlanForm{
		Location:    o.location,
		AvgTemp:     num("temp", o.temp),
		Humidity:    num("humidity", o.humidity),
		Space:       num("space", o.space),
		LightSource: o.light,
		FarmWidth:   num("width", o.width),
		FarmDepth:   num("depth", o.depth),
	}
}

func runPlan(cmd *cobra.Command, a *app, o *planOpts) error {
	cat, err := a.loadCatalog(&o.catalog)
	if err != nil {
		return err
	}

	form := presetForm(cmd.Flags(), o)
	var in entities.UserInput
	if o.noInput {
		if form.Location == "" || form.AvgTemp == "" || form.Humidity == "" || form.LightSource == "" {
			return fmt.Errorf("%w: --location, --temp, --humidity and --light are required with --no-input", errMissingInput)
		}
		var errs entities.FieldErrors
		if in, errs = form.ToInput(); errs != nil {
			return errs
		}
	} else if in, err = ui.CollectInput(a.prompter, form); err != nil {
		return err
	}

	plan := planSvcImp.NewPlanService(climate.New(cat), a.log).Generate(in)
	a.log.Debug("plan ready", zap.String("zone", string(plan.ZoneID)), zap.Int("crops", len(plan.Crops)))

	out := cmd.OutOrStdout()
	if o.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	_, err = fmt.Fprint(out, ui.RenderPlan(plan))
	return err
}
