package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"critique/internal/delivery/http/middleware"
	"critique/internal/domain/entity"
	domainerrors "critique/internal/domain/errors"
	mockusecase "critique/internal/mocks/usecase"
	"critique/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestItemHandler_CreateItem_Success(t *testing.T) {
	e := newTestEcho()
	itemUC := mockusecase.NewMockItemUsecase(t)
	h := &ItemHandler{itemUC: itemUC, logger: newTestLogger()}

	callerID := uuid.New()
	item := &entity.Item{ID: uuid.New(), Title: "Espresso Machine", Details: "Dual boiler."}
	itemUC.On("CreateItem", mock.Anything, callerID, &usecase.CreateItemInput{
		Title:   "Espresso Machine",
		Details: "Dual boiler.",
	}).Return(item, nil)

	req := newJSONRequest(http.MethodPost, "/items", `{"title":"Espresso Machine","details":"Dual boiler."}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, callerID)

	err := h.CreateItem(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Espresso Machine")
}

func TestItemHandler_CreateItem_DuplicateTitle(t *testing.T) {
	e := newTestEcho()
	itemUC := mockusecase.NewMockItemUsecase(t)
	h := &ItemHandler{itemUC: itemUC, logger: newTestLogger()}

	callerID := uuid.New()
	itemUC.On("CreateItem", mock.Anything, callerID, mock.Anything).
		Return(nil, domainerrors.ErrDuplicateTitle.WrapMessage("create item"))

	req := newJSONRequest(http.MethodPost, "/items", `{"title":"Espresso Machine"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, callerID)

	err := h.CreateItem(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_TITLE")
}

func TestItemHandler_GetItem_InvalidID(t *testing.T) {
	e := newTestEcho()
	itemUC := mockusecase.NewMockItemUsecase(t)
	h := &ItemHandler{itemUC: itemUC, logger: newTestLogger()}

	req := httptest.NewRequest(http.MethodGet, "/items/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetItem(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
	itemUC.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything)
}

func TestItemHandler_GetItem_NotFound(t *testing.T) {
	e := newTestEcho()
	itemUC := mockusecase.NewMockItemUsecase(t)
	h := &ItemHandler{itemUC: itemUC, logger: newTestLogger()}

	itemID := uuid.New()
	itemUC.On("GetItem", mock.Anything, itemID).
		Return(nil, domainerrors.ErrNotFound.WrapMessage("get item"))

	req := httptest.NewRequest(http.MethodGet, "/items/"+itemID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	err := h.GetItem(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestItemHandler_ListItems_Success(t *testing.T) {
	e := newTestEcho()
	itemUC := mockusecase.NewMockItemUsecase(t)
	h := &ItemHandler{itemUC: itemUC, logger: newTestLogger()}

	items := []*entity.Item{
		{ID: uuid.New(), Title: "Espresso Machine"},
		{ID: uuid.New(), Title: "Trail Running Shoes"},
	}
	itemUC.On("ListItems", mock.Anything).Return(items, nil)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListItems(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Espresso Machine")
	assert.Contains(t, rec.Body.String(), "Trail Running Shoes")
}

func TestItemHandler_DeleteItem_Success(t *testing.T) {
	e := newTestEcho()
	itemUC := mockusecase.NewMockItemUsecase(t)
	h := &ItemHandler{itemUC: itemUC, logger: newTestLogger()}

	callerID := uuid.New()
	itemID := uuid.New()
	itemUC.On("DeleteItem", mock.Anything, callerID, itemID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/items/"+itemID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())
	c.Set(middleware.ContextKeyUserID, callerID)

	err := h.DeleteItem(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestItemHandler_UpdateItem_ValidationError(t *testing.T) {
	e := newTestEcho()
	itemUC := mockusecase.NewMockItemUsecase(t)
	h := &ItemHandler{itemUC: itemUC, logger: newTestLogger()}

	callerID := uuid.New()
	itemID := uuid.New()

	req := newJSONRequest(http.MethodPut, "/items/"+itemID.String(), `{"title":""}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())
	c.Set(middleware.ContextKeyUserID, callerID)

	err := h.UpdateItem(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	itemUC.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
