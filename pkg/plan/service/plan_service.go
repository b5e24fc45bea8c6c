package service

import (
	"github.com/akhilm2223/vertical-farmingg/entities"
)

type PlanService interface {
	// Generate runs classify, select, compute and assemble for an input the
	// caller has already validated.
	Generate(in entities.UserInput) entities.FarmingPlan
}
