package app

import (
	"context"
	"fmt"

	"github.com/christophbittig/network-subnet-assignment/internal/domain"
	"github.com/christophbittig/network-subnet-assignment/internal/domain/subnetplan"
	"github.com/christophbittig/network-subnet-assignment/internal/ports"
)

type AssignmentUseCase interface {
	Run(ctx context.Context, base subnetplan.Block) error
}

// Проверка реализации интерфейса AssignmentUseCase на этапе компиляции.
var _ AssignmentUseCase = (*AssignmentService)(nil)

// AssignmentService связывает источник запросов, планировщик и вывод плана.
// Частичного успеха нет: любая ошибка прерывает прогон до записи результата.
type AssignmentService struct {
	source  ports.RequestSource
	meta    domain.SiteMeta
	writers []ports.PlanWriter
}

func NewAssignmentService(
	source ports.RequestSource,
	meta domain.SiteMeta,
	writers ...ports.PlanWriter,
) *AssignmentService {
	return &AssignmentService{
		source:  source,
		meta:    meta,
		writers: writers,
	}
}

func (s *AssignmentService) Run(ctx context.Context, base subnetplan.Block) error {
	reqs, err := s.source.LoadRequests(ctx)
	if err != nil {
		return fmt.Errorf("load requests: %w", err)
	}

	plan, err := subnetplan.Allocate(base, reqs)
	if err != nil {
		return fmt.Errorf("allocate subnets: %w", err)
	}

	for _, w := range s.writers {
		if err := w.WritePlan(ctx, plan, s.meta); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
	}
	return nil
}
