package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	"github.com/paydeck/bank_portal_app/internal/core/domain"
	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
	"github.com/paydeck/bank_portal_app/internal/dto"
	"github.com/paydeck/bank_portal_app/internal/handlers"
	"github.com/paydeck/bank_portal_app/internal/platform/config"
)

// --- Mock PayrollRowService ---
type MockPayrollRowService struct {
	mock.Mock
}

func (m *MockPayrollRowService) ListRows(ctx context.Context) ([]domain.PayrollRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollRow), args.Error(1)
}

func (m *MockPayrollRowService) ApproveRow(ctx context.Context, rowID string) (*domain.PayrollRow, bool, error) {
	args := m.Called(ctx, rowID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.PayrollRow), args.Bool(1), args.Error(2)
}

func (m *MockPayrollRowService) RejectRow(ctx context.Context, rowID string) (*domain.PayrollRow, bool, error) {
	args := m.Called(ctx, rowID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.PayrollRow), args.Bool(1), args.Error(2)
}

var _ portssvc.PayrollRowSvcFacade = (*MockPayrollRowService)(nil)

// --- Test Suite ---
type PayrollRowHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPayrollRowService
}

func (suite *PayrollRowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockPayrollRowService)

	cfg := &config.Config{DefaultPageSize: 10}
	services := &portssvc.ServiceContainer{PayrollRow: suite.mockService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *PayrollRowHandlerTestSuite) TestListRows() {
	rows := []domain.PayrollRow{
		{RowID: "2031171", Name: "John", Department: "Technology", Period: "31 Aug", Amount: decimal.NewFromInt(40000), Status: domain.RowPending, ApprovalsLeft: 1},
	}
	suite.mockService.On("ListRows", mock.Anything).Return(rows, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/rows", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)

	var body []dto.PayrollRowResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("2031171", body[0].RowID)
	suite.Equal("₹40,000.00", body[0].AmountFormatted)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PayrollRowHandlerTestSuite) TestApproveRow_Changed() {
	row := &domain.PayrollRow{RowID: "2031173", Name: "Martin", Amount: decimal.NewFromInt(600000), Status: domain.RowPending, ApprovalsLeft: 4}
	suite.mockService.On("ApproveRow", mock.Anything, "2031173").Return(row, true, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/rows/2031173/approve", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)

	var body dto.PayrollRowActionResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.True(body.Changed)
	suite.Equal(4, body.Row.ApprovalsLeft)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PayrollRowHandlerTestSuite) TestRejectRow_TerminalIsUnchanged() {
	row := &domain.PayrollRow{RowID: "2031175", Name: "Nisha", Amount: decimal.NewFromInt(40000), Status: domain.RowRejected}
	suite.mockService.On("RejectRow", mock.Anything, "2031175").Return(row, false, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/rows/2031175/reject", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)

	var body dto.PayrollRowActionResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.False(body.Changed)
	suite.Equal(string(domain.RowRejected), body.Row.Status)
}

func (suite *PayrollRowHandlerTestSuite) TestApproveRow_NotFound() {
	suite.mockService.On("ApproveRow", mock.Anything, "nope").Return(nil, false, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/rows/nope/approve", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusNotFound, rec.Code)
}

func TestPayrollRowHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollRowHandlerTestSuite))
}
