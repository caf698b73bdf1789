// Package category holds the reference data tickets are filed under.
// Categories are created out-of-band and are read-only to the ticket core.
package category

import (
	"context"
	"fmt"
)

type Category struct {
	id   uint
	name string
}

func ReconstructCategory(id uint, name string) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return &Category{id: id, name: name}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

type Repository interface {
	FindByID(ctx context.Context, id uint) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}
