package usecases

import (
	"context"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CategoryResult struct {
	ID   uint
	Name string
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]CategoryResult, error)
}

// ListCategoriesUseCase exposes the category reference data intake clients
// present when opening a ticket.
type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, log logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       log,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]CategoryResult, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, errors.NewInternalError("failed to list categories")
	}

	results := make([]CategoryResult, 0, len(categories))
	for _, c := range categories {
		results = append(results, CategoryResult{ID: c.ID(), Name: c.Name()})
	}

	return results, nil
}
