package product

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cachefront/backend/internal/cache"
	httpHandler "github.com/cachefront/backend/internal/http"
	"github.com/cachefront/backend/testhelper"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProduct(ctx context.Context, id int) (*Product, cache.Origin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*Product), args.Get(1).(cache.Origin), args.Error(2)
}

func setupRouter(service ProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := testhelper.NewTestLogger()
	router := gin.New()
	handler := NewHandler(service, httpHandler.NewResponseHandler(log), log)
	handler.RegisterRoutes(router)
	return router
}

func TestHandleGetProduct_FromSource(t *testing.T) {
	service := new(MockProductService)
	service.On("GetProduct", mock.Anything, 42).
		Return(&Product{ID: 42, Name: "Product 42", Price: 163}, cache.OriginSource, nil)

	router := setupRouter(service)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/products/42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp httpHandler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(42), data["id"])
	assert.Equal(t, "Product 42", data["name"])
	assert.Equal(t, "source", data["origin"])

	service.AssertExpectations(t)
}

func TestHandleGetProduct_FromCache(t *testing.T) {
	service := new(MockProductService)
	service.On("GetProduct", mock.Anything, 7).
		Return(&Product{ID: 7, Name: "Product 7", Price: 110.5}, cache.OriginCache, nil)

	router := setupRouter(service)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/products/7", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp httpHandler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "cache", data["origin"])
}

func TestHandleGetProduct_InvalidID(t *testing.T) {
	service := new(MockProductService)
	router := setupRouter(service)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/products/not-a-number", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httpHandler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "id", resp.Error.Field)

	service.AssertNotCalled(t, "GetProduct")
}

func TestHandleGetProduct_UpstreamFailure(t *testing.T) {
	service := new(MockProductService)
	service.On("GetProduct", mock.Anything, 3).
		Return(nil, cache.Origin(""), assert.AnError)

	router := setupRouter(service)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/products/3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp httpHandler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UPSTREAM_ERROR", resp.Error.Code)
}
