package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lmonteiro91/aeroportal/internal/domain"
	"github.com/lmonteiro91/aeroportal/internal/service/baggage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBaggageUseCase is a mock implementation of baggage.BaggageUseCase
type MockBaggageUseCase struct {
	mock.Mock
}

func (m *MockBaggageUseCase) Register(ctx context.Context, input baggage.RegisterInput) (*domain.Baggage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Baggage), args.Error(1)
}

func (m *MockBaggageUseCase) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestBaggageHandler_register(t *testing.T) {
	mockService := &MockBaggageUseCase{}
	handler := NewBaggageHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/registrar-bagagem",
		strings.NewReader(`{"idPassageiro": 7, "idVoo": 4, "peso": 23.5}`))
	c.Request.Header.Set("Content-Type", "application/json")

	bag := &domain.Baggage{ID: 11, PassengerID: 7, FlightID: 4, Weight: 23.5, Status: domain.BaggageStatusRegistered}

	mockService.On("Register", c.Request.Context(), baggage.RegisterInput{
		PassengerID: 7, FlightID: 4, Weight: 23.5,
	}).Return(bag, nil)

	handler.register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestBaggageHandler_register_missingFields(t *testing.T) {
	mockService := &MockBaggageUseCase{}
	handler := NewBaggageHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/registrar-bagagem",
		strings.NewReader(`{"idPassageiro": 7}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"erro": "Dados incompletos"}`, w.Body.String())
	mockService.AssertNotCalled(t, "Register")
}

func TestBaggageHandler_register_passengerNotFound(t *testing.T) {
	mockService := &MockBaggageUseCase{}
	handler := NewBaggageHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/registrar-bagagem",
		strings.NewReader(`{"idPassageiro": 999, "idVoo": 4, "peso": 10}`))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Register", c.Request.Context(), mock.AnythingOfType("baggage.RegisterInput")).
		Return(nil, domain.ErrPassengerNotFound)

	handler.register(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"erro": "Passageiro não encontrado"}`, w.Body.String())
}

func TestBaggageHandler_updateStatus(t *testing.T) {
	mockService := &MockBaggageUseCase{}
	handler := NewBaggageHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "11"}}
	c.Request = httptest.NewRequest("PUT", "/bagagem/11/status",
		strings.NewReader(`{"status": "Embarcada"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("UpdateStatus", c.Request.Context(), int64(11), "Embarcada").Return(nil)

	handler.updateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mensagem": "Status atualizado com sucesso"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestBaggageHandler_updateStatus_emptyStatus(t *testing.T) {
	mockService := &MockBaggageUseCase{}
	handler := NewBaggageHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "11"}}
	c.Request = httptest.NewRequest("PUT", "/bagagem/11/status", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.updateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"erro": "Status não fornecido"}`, w.Body.String())
	mockService.AssertNotCalled(t, "UpdateStatus")
}

func TestBaggageHandler_updateStatus_nonNumericID(t *testing.T) {
	mockService := &MockBaggageUseCase{}
	handler := NewBaggageHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest("PUT", "/bagagem/abc/status",
		strings.NewReader(`{"status": "Embarcada"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.updateStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"erro": "Bagagem não encontrada"}`, w.Body.String())
	mockService.AssertNotCalled(t, "UpdateStatus")
}

func TestBaggageHandler_updateStatus_notFound(t *testing.T) {
	mockService := &MockBaggageUseCase{}
	handler := NewBaggageHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "999"}}
	c.Request = httptest.NewRequest("PUT", "/bagagem/999/status",
		strings.NewReader(`{"status": "Embarcada"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("UpdateStatus", c.Request.Context(), int64(999), "Embarcada").
		Return(domain.ErrBaggageNotFound)

	handler.updateStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"erro": "Bagagem não encontrada"}`, w.Body.String())
}

func TestBaggageHandler_updateStatus_updateFailed(t *testing.T) {
	mockService := &MockBaggageUseCase{}
	handler := NewBaggageHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "11"}}
	c.Request = httptest.NewRequest("PUT", "/bagagem/11/status",
		strings.NewReader(`{"status": "Extraviada"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("UpdateStatus", c.Request.Context(), int64(11), "Extraviada").
		Return(errors.New("database error"))

	handler.updateStatus(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"erro": "Erro interno do servidor"}`, w.Body.String())
}
