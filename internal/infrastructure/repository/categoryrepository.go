package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(gormDB *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     gormDB,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var modelList []models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*category.Category, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}
