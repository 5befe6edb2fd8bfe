package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	"github.com/paydeck/bank_portal_app/internal/core/domain"
	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
	"github.com/paydeck/bank_portal_app/internal/core/services"
	"github.com/paydeck/bank_portal_app/internal/dto"
)

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) ListDrafts(ctx context.Context) ([]domain.PayrollTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollTransaction), args.Error(1)
}

func (m *MockPayrollRepository) FindDraftByID(ctx context.Context, id string) (*domain.PayrollTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollTransaction), args.Error(1)
}

func (m *MockPayrollRepository) SaveDrafts(ctx context.Context, txns []domain.PayrollTransaction) error {
	args := m.Called(ctx, txns)
	return args.Error(0)
}

func (m *MockPayrollRepository) UpdateDraft(ctx context.Context, txn domain.PayrollTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockPayrollRepository) DeleteDraft(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPayrollRepository) ClearDrafts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPayrollRepository) FindPendingBatchByID(ctx context.Context, batchID string) (*domain.Batch, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}

func (m *MockPayrollRepository) ListPendingBatches(ctx context.Context) ([]domain.Batch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Batch), args.Error(1)
}

func (m *MockPayrollRepository) ListHistoryBatches(ctx context.Context) ([]domain.Batch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Batch), args.Error(1)
}

func (m *MockPayrollRepository) SavePendingBatch(ctx context.Context, batch domain.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockPayrollRepository) MoveBatchToHistory(ctx context.Context, batch domain.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

// --- Mock ApproverRepository ---
type MockApproverRepository struct {
	mock.Mock
}

func (m *MockApproverRepository) ListApprovers(ctx context.Context) ([]domain.Approver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Approver), args.Error(1)
}

func (m *MockApproverRepository) FindApproversByIDs(ctx context.Context, ids []string) ([]domain.Approver, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Approver), args.Error(1)
}

// --- Test Suite ---
type PayrollServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockPayrollRepository
	mockApprover *MockApproverRepository
	service      portssvc.PayrollSvcFacade
	now          time.Time
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPayrollRepository)
	suite.mockApprover = new(MockApproverRepository)
	suite.now = time.Date(2025, 8, 5, 10, 30, 0, 0, time.UTC)
	suite.service = services.NewPayrollService(
		suite.mockRepo,
		suite.mockApprover,
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func draftTxn(id string, amount int64) domain.PayrollTransaction {
	return domain.PayrollTransaction{
		ID:            id,
		BankID:        "HDFC001",
		AccountNumber: "1234567890",
		Name:          "Employee " + id,
		Amount:        decimal.NewFromInt(amount),
		Remarks:       "August salary",
	}
}

func approvers(n int) []domain.Approver {
	out := make([]domain.Approver, n)
	for i := range out {
		out[i] = domain.Approver{ID: fmt.Sprintf("%d", i+1), Name: fmt.Sprintf("Approver %d", i+1), Role: "Manager"}
	}
	return out
}

// --- Draft tests ---

func (suite *PayrollServiceTestSuite) TestAddDraft_Success() {
	ctx := context.Background()
	req := dto.CreatePayrollTransactionRequest{
		BankID:        "HDFC001",
		AccountNumber: "1234567890",
		Name:          "John Doe",
		Amount:        decimal.NewFromInt(25000),
		Remarks:       "August salary",
	}

	suite.mockRepo.On("SaveDrafts", ctx, mock.MatchedBy(func(txns []domain.PayrollTransaction) bool {
		return len(txns) == 1 && txns[0].Name == req.Name && txns[0].Amount.Equal(req.Amount) && txns[0].ID != ""
	})).Return(nil).Once()

	txn, err := suite.service.AddDraft(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(req.BankID, txn.BankID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestAddDraft_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePayrollTransactionRequest{
		BankID:        "HDFC001",
		AccountNumber: "1234567890",
		Name:          "John Doe",
		Amount:        decimal.NewFromInt(-5),
		Remarks:       "August salary",
	}

	txn, err := suite.service.AddDraft(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDrafts", mock.Anything, mock.Anything)
}

// --- CSV import tests ---

func (suite *PayrollServiceTestSuite) TestCommitImport_SkipsInvalidRows() {
	ctx := context.Background()
	csv := "Bank ID,Account Number,Name,Amount,Remarks\n" +
		"HDFC001,1234567890,John Doe,25000,August salary\n" +
		"HDFC002,9876543210,Jane Smith,,August salary\n" +
		"HDFC003,1122334455,Bob Ray,48000.50,Bonus\n"

	suite.mockRepo.On("SaveDrafts", ctx, mock.MatchedBy(func(txns []domain.PayrollTransaction) bool {
		return len(txns) == 2 && txns[0].Name == "John Doe" && txns[1].Name == "Bob Ray"
	})).Return(nil).Once()

	added, skipped, err := suite.service.CommitImport(ctx, strings.NewReader(csv))

	suite.Require().NoError(err)
	suite.Len(added, 2)
	suite.Equal(1, skipped)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCommitImport_AllInvalidSavesNothing() {
	ctx := context.Background()
	csv := "Bank ID,Account Number,Name,Amount,Remarks\n" +
		"HDFC001,1234567890,John Doe,not-a-number,August salary\n"

	added, skipped, err := suite.service.CommitImport(ctx, strings.NewReader(csv))

	suite.Require().NoError(err)
	suite.Empty(added)
	suite.Equal(1, skipped)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDrafts", mock.Anything, mock.Anything)
}

// --- Batch lifecycle tests ---

func (suite *PayrollServiceTestSuite) TestCreateBatch_Success() {
	ctx := context.Background()
	drafts := []domain.PayrollTransaction{draftTxn("t1", 100000), draftTxn("t2", 50000)}
	ids := []string{"1", "2", "3"}

	suite.mockRepo.On("ListDrafts", ctx).Return(drafts, nil).Once()
	suite.mockApprover.On("FindApproversByIDs", ctx, ids).Return(approvers(3), nil).Once()
	suite.mockRepo.On("SavePendingBatch", ctx, mock.MatchedBy(func(b domain.Batch) bool {
		return b.Status == domain.BatchPending &&
			b.TotalAmount.Equal(decimal.NewFromInt(150000)) &&
			b.RequiredApprovals == 3 &&
			len(b.Transactions) == 2 &&
			b.CreatedAt.Equal(suite.now) &&
			b.ApprovedAt == nil
	})).Return(nil).Once()
	suite.mockRepo.On("ClearDrafts", ctx).Return(nil).Once()

	batch, err := suite.service.CreateBatch(ctx, ids)

	suite.Require().NoError(err)
	suite.Require().NotNil(batch)
	suite.NotEmpty(batch.BatchID)
	suite.Equal(3, batch.RequiredApprovals)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockApprover.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCreateBatch_ExactThresholdNeedsFive() {
	ctx := context.Background()
	drafts := []domain.PayrollTransaction{draftTxn("t1", 500000)}
	ids := []string{"1", "2", "3", "4", "5"}

	suite.mockRepo.On("ListDrafts", ctx).Return(drafts, nil).Once()
	suite.mockApprover.On("FindApproversByIDs", ctx, ids).Return(approvers(5), nil).Once()
	suite.mockRepo.On("SavePendingBatch", ctx, mock.MatchedBy(func(b domain.Batch) bool {
		return b.RequiredApprovals == 5
	})).Return(nil).Once()
	suite.mockRepo.On("ClearDrafts", ctx).Return(nil).Once()

	batch, err := suite.service.CreateBatch(ctx, ids)

	suite.Require().NoError(err)
	suite.Equal(5, batch.RequiredApprovals)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCreateBatch_TooFewApprovers() {
	ctx := context.Background()
	drafts := []domain.PayrollTransaction{draftTxn("t1", 600000)}
	ids := []string{"1", "2"}

	suite.mockRepo.On("ListDrafts", ctx).Return(drafts, nil).Once()
	suite.mockApprover.On("FindApproversByIDs", ctx, ids).Return(approvers(2), nil).Once()

	batch, err := suite.service.CreateBatch(ctx, ids)

	suite.Require().Error(err)
	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePendingBatch", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "ClearDrafts", mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestCreateBatch_EmptyWorkingSet() {
	ctx := context.Background()

	suite.mockRepo.On("ListDrafts", ctx).Return([]domain.PayrollTransaction{}, nil).Once()

	batch, err := suite.service.CreateBatch(ctx, []string{"1"})

	suite.Require().Error(err)
	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestCreateBatch_DuplicateApproverIDsCollapse() {
	ctx := context.Background()
	drafts := []domain.PayrollTransaction{draftTxn("t1", 40000)}

	suite.mockApprover.On("FindApproversByIDs", ctx, []string{"1"}).Return(approvers(1), nil).Once()
	suite.mockRepo.On("ListDrafts", ctx).Return(drafts, nil).Once()
	suite.mockRepo.On("SavePendingBatch", ctx, mock.AnythingOfType("domain.Batch")).Return(nil).Once()
	suite.mockRepo.On("ClearDrafts", ctx).Return(nil).Once()

	batch, err := suite.service.CreateBatch(ctx, []string{"1", "1", "1"})

	suite.Require().NoError(err)
	suite.Len(batch.Approvers, 1)
	suite.mockApprover.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestApproveBatch_Success() {
	ctx := context.Background()
	pending := domain.Batch{
		BatchID:           "batch-1",
		Transactions:      []domain.PayrollTransaction{draftTxn("t1", 40000)},
		TotalAmount:       decimal.NewFromInt(40000),
		Status:            domain.BatchPending,
		CreatedAt:         suite.now.Add(-time.Hour),
		RequiredApprovals: 1,
	}

	suite.mockRepo.On("FindPendingBatchByID", ctx, "batch-1").Return(&pending, nil).Once()
	suite.mockRepo.On("MoveBatchToHistory", ctx, mock.MatchedBy(func(b domain.Batch) bool {
		return b.BatchID == "batch-1" &&
			b.Status == domain.BatchApproved &&
			b.ApprovedAt != nil && b.ApprovedAt.Equal(suite.now)
	})).Return(nil).Once()

	batch, err := suite.service.ApproveBatch(ctx, "batch-1")

	suite.Require().NoError(err)
	suite.Equal(domain.BatchApproved, batch.Status)
	suite.Require().NotNil(batch.ApprovedAt)
	suite.True(batch.ApprovedAt.Equal(suite.now))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestApproveBatch_AlreadyApproved() {
	ctx := context.Background()
	approvedAt := suite.now.Add(-time.Hour)
	history := []domain.Batch{{BatchID: "batch-1", Status: domain.BatchApproved, ApprovedAt: &approvedAt}}

	suite.mockRepo.On("FindPendingBatchByID", ctx, "batch-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("ListHistoryBatches", ctx).Return(history, nil).Once()

	batch, err := suite.service.ApproveBatch(ctx, "batch-1")

	suite.Require().Error(err)
	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockRepo.AssertNotCalled(suite.T(), "MoveBatchToHistory", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestApproveBatch_UnknownBatch() {
	ctx := context.Background()

	suite.mockRepo.On("FindPendingBatchByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("ListHistoryBatches", ctx).Return([]domain.Batch{}, nil).Once()

	batch, err := suite.service.ApproveBatch(ctx, "nope")

	suite.Require().Error(err)
	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PayrollServiceTestSuite) TestListHistory_Paginates() {
	ctx := context.Background()
	history := make([]domain.Batch, 12)
	for i := range history {
		history[i] = domain.Batch{BatchID: fmt.Sprintf("batch-%d", i), Status: domain.BatchApproved}
	}

	suite.mockRepo.On("ListHistoryBatches", ctx).Return(history, nil).Once()

	page, totalPages, err := suite.service.ListHistory(ctx, 5, 3)

	suite.Require().NoError(err)
	suite.Len(page, 2)
	suite.Equal(3, totalPages)
	suite.Equal("batch-10", page[0].BatchID)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
