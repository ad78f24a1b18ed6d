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

func TestAuditLogList_FiltersByResource(t *testing.T) {
	audit := new(AuditRepoMock)
	uc := usecase.NewAuditLogUsecase(audit)

	id := int64(9)
	audit.On("List", mock.Anything, repo.AuditLogFilter{
		Page: 1, Limit: 50, ResourceType: "order", ResourceID: &id,
	}).Return([]model.AuditLog{
		{ID: 1, Action: model.AuditActionUpdateOrderStatus, ResourceType: model.AuditResourceOrder, ResourceID: 9},
	}, int64(1), nil)

	out, err := uc.List(context.Background(), usecase.ListAuditLogsInput{
		Page: 1, Limit: 50, ResourceType: "order", ResourceID: &id,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, model.AuditActionUpdateOrderStatus, out.Items[0].Action)
	audit.AssertExpectations(t)
}

func TestAuditLogList_InvalidResourceType(t *testing.T) {
	uc := usecase.NewAuditLogUsecase(new(AuditRepoMock))

	_, err := uc.List(context.Background(), usecase.ListAuditLogsInput{
		Page: 1, Limit: 50, ResourceType: "invoice",
	})
	assertErrContains(t, err, "resource_type")
}

func TestAuditLogList_InvalidPaging(t *testing.T) {
	uc := usecase.NewAuditLogUsecase(new(AuditRepoMock))

	_, err := uc.List(context.Background(), usecase.ListAuditLogsInput{Page: 0, Limit: 50})
	assertErrContains(t, err, "invalid page")

	_, err = uc.List(context.Background(), usecase.ListAuditLogsInput{Page: 1, Limit: 101})
	assertErrContains(t, err, "invalid limit")
}
