package catalog

import (
	"context"

	"fitbook/internal/domain"
)

type ClassRepository interface {
	GetAll(ctx context.Context) ([]domain.FitnessClass, error)
}
