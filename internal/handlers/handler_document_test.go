package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/handlers"
)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) PostDocument(ctx context.Context, businessID string, req dto.PostDocumentRequest, userID string) (*domain.Document, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockPostingService) RecordPayment(ctx context.Context, businessID, documentID string, req dto.RecordPaymentRequest, userID string) (*domain.Document, error) {
	args := m.Called(ctx, businessID, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockPostingService) CancelDocument(ctx context.Context, businessID, documentID, userID string) (*domain.Document, error) {
	args := m.Called(ctx, businessID, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockPostingService) UpdateDocumentItems(ctx context.Context, businessID, documentID string, req dto.UpdateDocumentItemsRequest, userID string) (*domain.Document, error) {
	args := m.Called(ctx, businessID, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockPostingService) GetDocument(ctx context.Context, businessID, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, businessID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockPostingService) ListDocuments(ctx context.Context, businessID string, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	args := m.Called(ctx, businessID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDocumentsResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

// --- Test Suite ---
type DocumentHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPostingService *MockPostingService
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockPostingService = new(MockPostingService)

	v1 := suite.router.Group("/api/v1/businesses/:businessID")
	handlers.RegisterDocumentRoutes(v1, suite.mockPostingService)
}

func (suite *DocumentHandlerTestSuite) TestPostDocument_Success() {
	businessID := uuid.NewString()
	userID := uuid.NewString()
	debitAccountID := uuid.NewString()
	creditAccountID := uuid.NewString()
	productID := uuid.NewString()

	expectedDoc := &domain.Document{
		DocumentID:  uuid.NewString(),
		BusinessID:  businessID,
		Kind:        domain.DocSale,
		Status:      domain.DocPending,
		TotalAmount: decimal.RequireFromString("637.16"),
	}
	expectedDoc.CreatedAt = time.Now().UTC()

	suite.mockPostingService.On("PostDocument",
		mock.Anything,
		businessID,
		mock.MatchedBy(func(req dto.PostDocumentRequest) bool {
			return req.Kind == "SALE" && len(req.Lines) == 1 && req.Lines[0].ProductID == productID
		}),
		userID,
	).Return(expectedDoc, nil).Once()

	body := fmt.Sprintf(`{
		"kind": "SALE",
		"debitAccountID": %q,
		"creditAccountID": %q,
		"lines": [{"productID": %q, "quantity": "3", "unitPrice": "199.99", "taxRate": "18", "discountRate": "10"}]
	}`, debitAccountID, creditAccountID, productID)

	url := fmt.Sprintf("/api/v1/businesses/%s/documents", businessID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.DocumentResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal(expectedDoc.DocumentID, responseBody.DocumentID)
	suite.Equal("SALE", responseBody.Kind)
	suite.True(responseBody.TotalAmount.Equal(decimal.RequireFromString("637.16")))

	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestPostDocument_MissingLines() {
	businessID := uuid.NewString()

	body := fmt.Sprintf(`{"kind": "SALE", "debitAccountID": %q, "creditAccountID": %q, "lines": []}`,
		uuid.NewString(), uuid.NewString())

	url := fmt.Sprintf("/api/v1/businesses/%s/documents", businessID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostingService.AssertNotCalled(suite.T(), "PostDocument")
}

func (suite *DocumentHandlerTestSuite) TestPostDocument_InsufficientStock() {
	businessID := uuid.NewString()

	suite.mockPostingService.On("PostDocument", mock.Anything, businessID, mock.Anything, "system").
		Return(nil, fmt.Errorf("%w: not enough stock", apperrors.ErrInsufficientStock)).Once()

	body := fmt.Sprintf(`{
		"kind": "SALE",
		"debitAccountID": %q,
		"creditAccountID": %q,
		"lines": [{"productID": %q, "quantity": "5"}]
	}`, uuid.NewString(), uuid.NewString(), uuid.NewString())

	url := fmt.Sprintf("/api/v1/businesses/%s/documents", businessID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestRecordPayment_Overpayment() {
	businessID := uuid.NewString()
	documentID := uuid.NewString()

	suite.mockPostingService.On("RecordPayment", mock.Anything, businessID, documentID, mock.Anything, "system").
		Return(nil, services.ErrOverPayment).Once()

	body := `{"amount": "100.01", "method": "CASH"}`
	url := fmt.Sprintf("/api/v1/businesses/%s/documents/%s/payments", businessID, documentID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_NotFound() {
	businessID := uuid.NewString()
	documentID := uuid.NewString()

	suite.mockPostingService.On("GetDocument", mock.Anything, businessID, documentID).
		Return(nil, services.ErrDocumentNotFound).Once()

	url := fmt.Sprintf("/api/v1/businesses/%s/documents/%s", businessID, documentID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestCancelDocument_AlreadyPaid() {
	businessID := uuid.NewString()
	documentID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockPostingService.On("CancelDocument", mock.Anything, businessID, documentID, userID).
		Return(nil, services.ErrAlreadyPaid).Once()

	url := fmt.Sprintf("/api/v1/businesses/%s/documents/%s/cancel", businessID, documentID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("X-User-ID", userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestListDocuments_ForwardsFilters() {
	businessID := uuid.NewString()

	expectedResponse := &dto.ListDocumentsResponse{
		Documents: []dto.DocumentResponse{
			{DocumentID: uuid.NewString(), Kind: "SALE", Status: "PENDING"},
		},
	}

	suite.mockPostingService.On("ListDocuments", mock.Anything, businessID,
		mock.MatchedBy(func(p dto.ListDocumentsParams) bool {
			return p.Kind != nil && *p.Kind == "SALE" &&
				p.Status != nil && *p.Status == "PENDING" &&
				p.Limit == 10
		}),
	).Return(expectedResponse, nil).Once()

	url := fmt.Sprintf("/api/v1/businesses/%s/documents?kind=SALE&status=PENDING&limit=10", businessID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListDocumentsResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Len(responseBody.Documents, 1)

	suite.mockPostingService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestDocumentHandler(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
