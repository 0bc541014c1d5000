package ports

import (
	"context"

	"github.com/christophbittig/network-subnet-assignment/internal/domain"
)

// RequestSource — абстракция источника списка запросов на подсети.
// Валидация записей — обязанность источника: планировщик получает
// только строго типизированные запросы.
type RequestSource interface {
	LoadRequests(ctx context.Context) ([]domain.AllocationRequest, error)
}
