package handler

import (
	"log/slog"
	"net/http"
	"time"

	"critique/internal/delivery/http/middleware"
	"critique/internal/delivery/http/response"
	"critique/internal/domain/entity"
	"critique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ItemUC usecase.ItemUsecase
	Logger *slog.Logger
}

// ItemHandler holds dependencies for catalog item handlers
type ItemHandler struct {
	itemUC usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		itemUC: params.ItemUC,
		logger: params.Logger,
	}
}

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Details string `json:"details" validate:"max=255"`
}

// UpdateItemRequest represents the request body for updating an item
type UpdateItemRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Details string `json:"details" validate:"max=255"`
}

// ItemResponse is the public view of a catalog item
type ItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toItemResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Title:     item.Title,
		Details:   item.Details,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func toItemResponses(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}

	return out
}

// CreateItem handles adding an item to the catalog
func (h *ItemHandler) CreateItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateItemInput{
		Title:   req.Title,
		Details: req.Details,
	}

	item, err := h.itemUC.CreateItem(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toItemResponse(item))
}

// GetItem handles retrieving a single item
func (h *ItemHandler) GetItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	item, err := h.itemUC.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item))
}

// ListItems handles retrieving the whole catalog
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.itemUC.ListItems(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toItemResponses(items))
}

// UpdateItem handles replacing an item's title and details
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateItemInput{
		Title:   req.Title,
		Details: req.Details,
	}

	item, err := h.itemUC.UpdateItem(c.Request().Context(), userID, itemID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item))
}

// DeleteItem handles removing an item from the catalog
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	if err := h.itemUC.DeleteItem(c.Request().Context(), userID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}
