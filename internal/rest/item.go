package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"giveLocal/business/item"
	"giveLocal/domain"
	"giveLocal/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ItemService interface {
	CreateItem(ctx context.Context, it *domain.Item, images []string) (*domain.Item, error)
	GetItems(ctx context.Context, category, itemType string, page, limit int) (item.ItemPage, error)
	GetItemByID(ctx context.Context, id uint64) (domain.Item, error)
}

type ItemHandler struct {
	itemService ItemService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewItemHandler(itemService ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type CreateItemRequest struct {
	ItemType   string   `json:"itemType" validate:"required,oneof=donation request"`
	ItemName   string   `json:"itemName" validate:"required"`
	Category   string   `json:"category"`
	Gender     string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Profession string   `json:"profession"`
	Age        int      `json:"age" validate:"gte=0,lte=150"`
	Priority   bool     `json:"priority"`
	Images     []string `json:"images" validate:"required,len=2"`
	Location   struct {
		Lat *float64 `json:"lat" validate:"required"`
		Lon *float64 `json:"lon" validate:"required"`
	} `json:"location"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint64)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate item request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	// Stored coordinates keep the (longitude, latitude) column order.
	newItem := &domain.Item{
		OwnerID:    userID,
		ItemType:   req.ItemType,
		ItemName:   req.ItemName,
		Category:   req.Category,
		Gender:     req.Gender,
		Profession: req.Profession,
		Age:        req.Age,
		Priority:   req.Priority,
		Longitude:  *req.Location.Lon,
		Latitude:   *req.Location.Lat,
	}

	created, err := h.itemService.CreateItem(ctx, newItem, req.Images)
	if err != nil {
		logger.Error("Failed to create item", err)
		switch err.Error() {
		case "item name is required",
			"item type must be donation or request",
			"exactly 2 images are required",
			"gender must be male, female or other",
			"location is required":
			return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *ItemHandler) GetItems(c echo.Context) error {
	category := c.QueryParam("category")
	itemType := c.QueryParam("itemType")

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pageResult, err := h.itemService.GetItems(ctx, category, itemType, page, limit)
	if err != nil {
		logger.Error("Failed to list items", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(pageResult))
}

func (h *ItemHandler) GetItemByID(c echo.Context) error {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest("invalid item id"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	found, err := h.itemService.GetItemByID(ctx, itemID)
	if err != nil {
		if err.Error() == "item not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(found))
}
