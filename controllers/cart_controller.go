package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopping/middleware"
	"shopping/models"
	"shopping/repository"
)

type CartController struct {
	repo    repository.CartRepository
	timeout time.Duration
	strict  bool
}

// NewCartController builds the cart handlers. With strict set, write
// requests whose fields cannot be coerced are rejected instead of defaulted.
func NewCartController(repo repository.CartRepository, timeout time.Duration, strict bool) *CartController {
	return &CartController{
		repo:    repo,
		timeout: timeout,
		strict:  strict,
	}
}

func (cc *CartController) GetCart(c *gin.Context) {
	ctx, cancel := storeContext(c, cc.timeout)
	defer cancel()

	items, err := cc.repo.FindAll(ctx)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("GET /api/cart error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	if items == nil {
		items = []models.CartItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (cc *CartController) AddToCart(c *gin.Context) {
	item, ok := cc.readItem(c)
	if !ok {
		return
	}

	ctx, cancel := storeContext(c, cc.timeout)
	defer cancel()

	id, err := cc.repo.Insert(ctx, item)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("POST /api/cart error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// UpdateCart overwrites every tracked field. An id that matches nothing is
// still a success.
func (cc *CartController) UpdateCart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, ok := cc.readItem(c)
	if !ok {
		return
	}

	ctx, cancel := storeContext(c, cc.timeout)
	defer cancel()

	if err := cc.repo.Update(ctx, id, item); err != nil {
		middleware.GetLogger(c).Error().Err(err).Str("id", id.Hex()).Msg("PUT /api/cart/:id error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (cc *CartController) RemoveFromCart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := storeContext(c, cc.timeout)
	defer cancel()

	if err := cc.repo.Delete(ctx, id); err != nil {
		middleware.GetLogger(c).Error().Err(err).Str("id", id.Hex()).Msg("DELETE /api/cart/:id error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// readItem writes the 400 response itself when it returns false.
func (cc *CartController) readItem(c *gin.Context) (models.CartItem, bool) {
	body, err := bindObject(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return models.CartItem{}, false
	}

	if !cc.strict {
		return models.SanitizeCartItem(body), true
	}

	item, err := models.ParseCartItem(body)
	if err != nil {
		var fieldErrs models.ValidationErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrs.Error(), "fields": fieldErrs})
			return models.CartItem{}, false
		}
		middleware.GetLogger(c).Error().Err(err).Msg("cart item validation error")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item"})
		return models.CartItem{}, false
	}
	return item, true
}
