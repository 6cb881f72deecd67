package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"shopping/middleware"
	"shopping/models"
	"shopping/repository"
)

type ProductController struct {
	repo    repository.ProductRepository
	timeout time.Duration
}

func NewProductController(repo repository.ProductRepository, timeout time.Duration) *ProductController {
	return &ProductController{
		repo:    repo,
		timeout: timeout,
	}
}

// AddProduct stores the body as-is and returns the new identifier.
func (pc *ProductController) AddProduct(c *gin.Context) {
	body, err := bindObject(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	ctx, cancel := storeContext(c, pc.timeout)
	defer cancel()

	id, err := pc.repo.Insert(ctx, models.NewProduct(body))
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("Error inserting data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product added successfully", "id": id})
}

func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx, cancel := storeContext(c, pc.timeout)
	defer cancel()

	products, err := pc.repo.FindAll(ctx)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("Error fetching data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	if products == nil {
		products = []bson.M{}
	}
	c.JSON(http.StatusOK, products)
}
