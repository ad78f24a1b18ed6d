package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"
	"shopadmin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCustomerFixture() (*CustomerRepoMock, *AuditRepoMock, *usecase.CustomerUsecase) {
	customers := new(CustomerRepoMock)
	audit := new(AuditRepoMock)
	return customers, audit, usecase.NewCustomerUsecase(customers, audit)
}

func validCustomerInput() usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:    "Jo Smith",
		Email:   "jo@example.com",
		City:    "Lisbon",
		ZipCode: "1000-001",
		Address: "Rua A 1",
	}
}

func TestCustomerCreate_Success(t *testing.T) {
	customers, audit, uc := newCustomerFixture()
	acceptAudit(audit)

	customers.On("ExistsByEmail", mock.Anything, "jo@example.com", int64(0)).Return(false, nil)
	customers.On("Create", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		return c.Email == "jo@example.com" && c.Name == "Jo Smith"
	})).Return(model.Customer{ID: 1, Email: "jo@example.com"}, nil)

	c, err := uc.Create(context.Background(), "admin", validCustomerInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	customers.AssertExpectations(t)
}

func TestCustomerCreate_EmailTaken(t *testing.T) {
	customers, _, uc := newCustomerFixture()

	customers.On("ExistsByEmail", mock.Anything, "jo@example.com", int64(0)).Return(true, nil)

	_, err := uc.Create(context.Background(), "admin", validCustomerInput())
	assertErrContains(t, err, "email")
	customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerCreate_InvalidEmail(t *testing.T) {
	_, _, uc := newCustomerFixture()

	in := validCustomerInput()
	in.Email = "not-an-email"
	_, err := uc.Create(context.Background(), "admin", in)
	assertErrContains(t, err, "email")
}

func TestCustomerCreate_NameTooLong(t *testing.T) {
	_, _, uc := newCustomerFixture()

	in := validCustomerInput()
	in.Name = strings.Repeat("x", 51)
	_, err := uc.Create(context.Background(), "admin", in)
	assertErrContains(t, err, "name")
}

func TestCustomerCreate_BadDateOfBirth(t *testing.T) {
	_, _, uc := newCustomerFixture()

	in := validCustomerInput()
	in.DateOfBirth = "31-12-1990"
	_, err := uc.Create(context.Background(), "admin", in)
	assertErrContains(t, err, "date_of_birth")
}

func TestCustomerCreate_ParsesDateOfBirth(t *testing.T) {
	customers, audit, uc := newCustomerFixture()
	acceptAudit(audit)

	want := time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC)
	customers.On("ExistsByEmail", mock.Anything, mock.Anything, int64(0)).Return(false, nil)
	customers.On("Create", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		return c.DateOfBirth != nil && c.DateOfBirth.Equal(want)
	})).Return(model.Customer{ID: 1}, nil)

	in := validCustomerInput()
	in.DateOfBirth = "1990-12-31"
	_, err := uc.Create(context.Background(), "admin", in)
	assert.NoError(t, err)
}

func TestCustomerUpdate_OwnEmailAllowed(t *testing.T) {
	customers, audit, uc := newCustomerFixture()
	acceptAudit(audit)

	// ignoreID means the customer's own row does not count as taken
	customers.On("ExistsByEmail", mock.Anything, "jo@example.com", int64(5)).Return(false, nil)
	customers.On("FindByID", mock.Anything, int64(5)).Return(model.Customer{ID: 5, Email: "jo@example.com"}, nil)
	customers.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Update(context.Background(), "admin", 5, validCustomerInput())
	assert.NoError(t, err)
	customers.AssertExpectations(t)
}

func TestCustomerUpdate_NotFound(t *testing.T) {
	customers, _, uc := newCustomerFixture()

	customers.On("ExistsByEmail", mock.Anything, mock.Anything, int64(99)).Return(false, nil)
	customers.On("FindByID", mock.Anything, int64(99)).Return(model.Customer{}, repo.ErrNotFound)

	_, err := uc.Update(context.Background(), "admin", 99, validCustomerInput())
	assertErrContains(t, err, "not found")
}

func TestCustomerBulkDelete(t *testing.T) {
	customers, audit, uc := newCustomerFixture()
	acceptAudit(audit)

	customers.On("SoftDeleteBulk", mock.Anything, []int64{7, 8}).Return(int64(2), nil)

	deleted, err := uc.BulkDelete(context.Background(), "admin", []int64{7, 8})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
