package serviceImp

import (
	"go.uber.org/zap"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/climate"
)

type PlanSvc struct {
	rules climate.RulesEngine
	log   *zap.Logger
}

func NewPlanService(r climate.RulesEngine, log *zap.Logger) *PlanSvc {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlanSvc{rules: r, log: log}
}

// Assemble packs the pipeline results into a plan. Crop order is kept.
func Assemble(zone entities.ZoneID, in entities.UserInput, crops []entities.CropPlan) entities.FarmingPlan {
	if crops == nil {
		crops = []entities.CropPlan{}
	}
	return entities.FarmingPlan{ZoneID: zone, Input: in, Crops: crops}
}

func (s *PlanSvc) Generate(in entities.UserInput) entities.FarmingPlan {
	zone := s.rules.Classify(in.AvgTempC, in.HumidityPct)
	ids := s.rules.SelectCrops(zone, in.LightSource)
	p := Assemble(zone, in, s.rules.Compute(ids, in))
	p.Layout = s.rules.Layout(in)
	p.Setup = s.rules.Advise(zone, in)

	s.log.Debug("plan generated",
		zap.String("location", in.Location),
		zap.String("zone", string(zone)),
		zap.String("light", string(in.LightSource)),
		zap.Int("tiers", p.Layout.TierCount),
		zap.Int("crops", len(p.Crops)),
	)
	return p
}
