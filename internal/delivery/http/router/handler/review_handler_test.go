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

func TestReviewHandler_CreateReview_StampsCaller(t *testing.T) {
	e := newTestEcho()
	reviewUC := mockusecase.NewMockReviewUsecase(t)
	h := &ReviewHandler{reviewUC: reviewUC, logger: newTestLogger()}

	callerID := uuid.New()
	itemID := uuid.New()
	review := &entity.Review{ID: uuid.New(), UserID: callerID, ItemID: itemID, Text: "Solid build.", Score: 4}
	reviewUC.On("CreateReview", mock.Anything, callerID, &usecase.CreateReviewInput{
		ItemID: itemID,
		Text:   "Solid build.",
		Score:  4,
	}).Return(review, nil)

	body := `{"item_id":"` + itemID.String() + `","text":"Solid build.","score":4}`
	req := newJSONRequest(http.MethodPost, "/reviews", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, callerID)

	err := h.CreateReview(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), callerID.String())
}

func TestReviewHandler_CreateReview_NotAuthenticated(t *testing.T) {
	e := newTestEcho()
	reviewUC := mockusecase.NewMockReviewUsecase(t)
	h := &ReviewHandler{reviewUC: reviewUC, logger: newTestLogger()}

	req := newJSONRequest(http.MethodPost, "/reviews", `{"item_id":"`+uuid.New().String()+`","score":4}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateReview(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	reviewUC.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewHandler_CreateReview_ScoreOutOfRange(t *testing.T) {
	e := newTestEcho()
	reviewUC := mockusecase.NewMockReviewUsecase(t)
	h := &ReviewHandler{reviewUC: reviewUC, logger: newTestLogger()}

	body := `{"item_id":"` + uuid.New().String() + `","text":"meh","score":6}`
	req := newJSONRequest(http.MethodPost, "/reviews", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.CreateReview(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	reviewUC.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewHandler_ListReviews_FilteredByItem(t *testing.T) {
	e := newTestEcho()
	reviewUC := mockusecase.NewMockReviewUsecase(t)
	h := &ReviewHandler{reviewUC: reviewUC, logger: newTestLogger()}

	itemID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), UserID: uuid.New(), ItemID: itemID, Text: "Great grip.", Score: 5},
	}
	reviewUC.On("ListReviews", mock.Anything, &itemID).Return(reviews, nil)

	req := httptest.NewRequest(http.MethodGet, "/reviews?item_id="+itemID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListReviews(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Great grip.")
}

func TestReviewHandler_ListReviews_BadItemFilter(t *testing.T) {
	e := newTestEcho()
	reviewUC := mockusecase.NewMockReviewUsecase(t)
	h := &ReviewHandler{reviewUC: reviewUC, logger: newTestLogger()}

	req := httptest.NewRequest(http.MethodGet, "/reviews?item_id=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListReviews(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	reviewUC.AssertNotCalled(t, "ListReviews", mock.Anything, mock.Anything)
}

func TestReviewHandler_UpdateReview_NotOwner(t *testing.T) {
	e := newTestEcho()
	reviewUC := mockusecase.NewMockReviewUsecase(t)
	h := &ReviewHandler{reviewUC: reviewUC, logger: newTestLogger()}

	callerID := uuid.New()
	reviewID := uuid.New()
	reviewUC.On("UpdateReview", mock.Anything, callerID, reviewID, mock.Anything).
		Return(nil, domainerrors.ErrForbidden.WrapMessage("update review"))

	req := newJSONRequest(http.MethodPut, "/reviews/"+reviewID.String(), `{"text":"Edited.","score":2}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(reviewID.String())
	c.Set(middleware.ContextKeyUserID, callerID)

	err := h.UpdateReview(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestReviewHandler_DeleteReview_NotFound(t *testing.T) {
	e := newTestEcho()
	reviewUC := mockusecase.NewMockReviewUsecase(t)
	h := &ReviewHandler{reviewUC: reviewUC, logger: newTestLogger()}

	callerID := uuid.New()
	reviewID := uuid.New()
	reviewUC.On("DeleteReview", mock.Anything, callerID, reviewID).
		Return(domainerrors.ErrNotFound.WrapMessage("delete review"))

	req := httptest.NewRequest(http.MethodDelete, "/reviews/"+reviewID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(reviewID.String())
	c.Set(middleware.ContextKeyUserID, callerID)

	err := h.DeleteReview(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestReviewHandler_GetReview_Success(t *testing.T) {
	e := newTestEcho()
	reviewUC := mockusecase.NewMockReviewUsecase(t)
	h := &ReviewHandler{reviewUC: reviewUC, logger: newTestLogger()}

	reviewID := uuid.New()
	review := &entity.Review{ID: reviewID, UserID: uuid.New(), ItemID: uuid.New(), Text: "Worth it.", Score: 5}
	reviewUC.On("GetReview", mock.Anything, reviewID).Return(review, nil)

	req := httptest.NewRequest(http.MethodGet, "/reviews/"+reviewID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(reviewID.String())

	err := h.GetReview(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Worth it.")
}
