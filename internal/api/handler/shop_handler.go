package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
	"github.com/vstdesk/rental-expense-manager/internal/core/ports"
)

// ShopHandler handles HTTP requests for shop records.
type ShopHandler struct {
	service ports.ShopService
}

func NewShopHandler(service ports.ShopService) *ShopHandler {
	return &ShopHandler{service: service}
}

// Create handles POST /shops.
//
// @Summary      Create a shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      shopRequest  true  "Shop details"
// @Success      201   {object}  shopResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /shops [post]
func (h *ShopHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req shopRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shop, err := h.service.Create(c.Request().Context(), toShopInput(req), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, shopResponse{
		Message: "shop created successfully",
		Data:    shop,
	})
}

// List handles GET /shops.
//
// @Summary      List shops
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  shopListResponse
// @Failure      401  {object}  errorResponse
// @Router       /shops [get]
func (h *ShopHandler) List(c echo.Context) error {
	shops, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shopListResponse{Count: len(shops), Data: shops})
}

// Get handles GET /shops/:id.
//
// @Summary      Get a shop by id
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Shop id"
// @Success      200  {object}  shopResponse
// @Failure      404  {object}  errorResponse
// @Router       /shops/{id} [get]
func (h *ShopHandler) Get(c echo.Context) error {
	shop, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shopResponse{Data: shop})
}

// Update handles PUT /shops/:id.
//
// @Summary      Update a shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Shop id"
// @Param        body  body      shopRequest  true  "Shop details"
// @Success      200   {object}  shopResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /shops/{id} [put]
func (h *ShopHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req shopRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shop, err := h.service.Update(c.Request().Context(), c.Param("id"), toShopInput(req), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shopResponse{
		Message: "shop updated successfully",
		Data:    shop,
	})
}

// UpdateStatus handles PATCH /shops/:id/status. The new value is stored
// as-is; no transition rules apply.
//
// @Summary      Update a shop's status
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Shop id"
// @Param        body  body      updateShopStatusRequest  true  "New status"
// @Success      200   {object}  shopResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /shops/{id}/status [patch]
func (h *ShopHandler) UpdateStatus(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateShopStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shop, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ShopStatus(req.Status), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shopResponse{
		Message: "shop status updated successfully",
		Data:    shop,
	})
}
