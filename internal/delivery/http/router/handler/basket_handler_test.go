package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/delivery/http/validator"
	"ishop/internal/domain/entity"
	domainerrors "ishop/internal/domain/errors"
	mockusecase "ishop/internal/mocks/usecase"
)

func newTestContext(t *testing.T, method, target, body string, user *entity.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if user != nil {
		deliverycontext.SetUser(c, user)
	}

	return c, rec
}

func TestBasketHandler_GetBasket(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	basket := &entity.Basket{
		ID:     uuid.New(),
		UserID: user.ID,
		Items: []entity.BasketItem{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2, Price: 50, Total: 100},
		},
		TotalPrice: 100,
	}

	basketUC := new(mockusecase.MockBasketUsecase)
	basketUC.On("GetBasket", mock.Anything, user.ID).Return(basket, nil)

	h := NewBasketHandler(basketUC)
	c, rec := newTestContext(t, http.MethodGet, "/basket", "", user)

	require.NoError(t, h.GetBasket(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), basket.ID.String())
	assert.Contains(t, rec.Body.String(), `"totalPrice":100`)
	basketUC.AssertExpectations(t)
}

func TestBasketHandler_GetBasket_NotFound(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	basketUC := new(mockusecase.MockBasketUsecase)
	basketUC.On("GetBasket", mock.Anything, user.ID).
		Return(nil, domainerrors.NewNotFoundError("basket", user.ID))

	h := NewBasketHandler(basketUC)
	c, _ := newTestContext(t, http.MethodGet, "/basket", "", user)

	err := h.GetBasket(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestBasketHandler_AddItem(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	productID := uuid.New()
	basket := &entity.Basket{ID: uuid.New(), UserID: user.ID, TotalPrice: 80}

	basketUC := new(mockusecase.MockBasketUsecase)
	basketUC.On("AddItem", mock.Anything, user.ID, mock.Anything).Return(basket, nil)

	h := NewBasketHandler(basketUC)
	body := `{"product":"` + productID.String() + `","quantity":2}`
	c, rec := newTestContext(t, http.MethodPost, "/basket", body, user)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	basketUC.AssertExpectations(t)
}

func TestBasketHandler_AddItem_InvalidProductID(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	basketUC := new(mockusecase.MockBasketUsecase)

	h := NewBasketHandler(basketUC)
	c, _ := newTestContext(t, http.MethodPost, "/basket", `{"product":"not-a-uuid"}`, user)

	err := h.AddItem(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	basketUC.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestBasketHandler_UpdateItem_PathParam(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	productID := uuid.New()
	basket := &entity.Basket{ID: uuid.New(), UserID: user.ID}

	basketUC := new(mockusecase.MockBasketUsecase)
	basketUC.On("UpdateItem", mock.Anything, user.ID, productID, mock.Anything).Return(basket, nil)

	h := NewBasketHandler(basketUC)
	c, rec := newTestContext(t, http.MethodPut, "/basket/"+productID.String(), `{"quantity":3}`, user)
	c.SetParamNames("productId")
	c.SetParamValues(productID.String())

	require.NoError(t, h.UpdateItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	basketUC.AssertExpectations(t)
}

func TestBasketHandler_RemoveItem_MalformedID(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	basketUC := new(mockusecase.MockBasketUsecase)

	h := NewBasketHandler(basketUC)
	c, _ := newTestContext(t, http.MethodDelete, "/basket/garbage", "", user)
	c.SetParamNames("itemId")
	c.SetParamValues("garbage")

	err := h.RemoveItem(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	basketUC.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestBasketHandler_ClearBasket(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	basketUC := new(mockusecase.MockBasketUsecase)
	basketUC.On("ClearBasket", mock.Anything, user.ID).Return(nil)

	h := NewBasketHandler(basketUC)
	c, rec := newTestContext(t, http.MethodDelete, "/basket", "", user)

	require.NoError(t, h.ClearBasket(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Basket cleared")
	basketUC.AssertExpectations(t)
}
