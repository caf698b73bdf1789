package mappers

import (
	"time"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:          u.ID(),
		ExternalID:  u.ExternalID(),
		DisplayName: u.DisplayName(),
		CreatedAt:   u.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.ExternalID,
		model.DisplayName,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

type CategoryMapper interface {
	ToDomain(model *models.CategoryModel) (*category.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) (*category.Category, error) {
	return category.ReconstructCategory(model.ID, model.Name)
}
