package usecase_test

import (
	"context"
	"testing"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"
	"shopadmin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCategoryFixture() (*CategoryRepoMock, *AuditRepoMock, *usecase.CategoryUsecase) {
	categories := new(CategoryRepoMock)
	audit := new(AuditRepoMock)
	return categories, audit, usecase.NewCategoryUsecase(categories, audit)
}

func TestCategoryCreate_TrimsName(t *testing.T) {
	categories, audit, uc := newCategoryFixture()
	acceptAudit(audit)

	categories.On("Create", mock.Anything, model.Category{Name: "Cameras"}).
		Return(model.Category{ID: 1, Name: "Cameras"}, nil)

	c, err := uc.Create(context.Background(), "admin", "  Cameras  ")
	assert.NoError(t, err)
	assert.Equal(t, "Cameras", c.Name)
	categories.AssertExpectations(t)
}

func TestCategoryCreate_EmptyName(t *testing.T) {
	_, _, uc := newCategoryFixture()

	_, err := uc.Create(context.Background(), "admin", "   ")
	assertErrContains(t, err, "name")
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	categories, _, uc := newCategoryFixture()

	categories.On("FindByID", mock.Anything, int64(9)).Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.Update(context.Background(), "admin", 9, "Lenses")
	assertErrContains(t, err, "not found")
}

func TestCategoryUpdate_RenamesInPlace(t *testing.T) {
	categories, audit, uc := newCategoryFixture()
	acceptAudit(audit)

	categories.On("FindByID", mock.Anything, int64(3)).Return(model.Category{ID: 3, Name: "Cameras"}, nil)
	categories.On("Update", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.ID == 3 && c.Name == "Camera Gear"
	})).Return(nil)

	c, err := uc.Update(context.Background(), "admin", 3, "Camera Gear")
	assert.NoError(t, err)
	assert.Equal(t, "Camera Gear", c.Name)
}

func TestCategoryDelete(t *testing.T) {
	categories, audit, uc := newCategoryFixture()
	acceptAudit(audit)

	categories.On("SoftDelete", mock.Anything, int64(3)).Return(nil)

	assert.NoError(t, uc.Delete(context.Background(), "admin", 3))
}
