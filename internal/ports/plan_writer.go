package ports

import (
	"context"

	"github.com/christophbittig/network-subnet-assignment/internal/domain"
	"github.com/christophbittig/network-subnet-assignment/internal/domain/subnetplan"
)

// PlanWriter — абстракция вывода готового плана назначений.
type PlanWriter interface {
	WritePlan(ctx context.Context, plan []subnetplan.Assignment, meta domain.SiteMeta) error
}
