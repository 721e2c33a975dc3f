package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/agriconnect/marketplace-api/internal/domain/product"
	"github.com/agriconnect/marketplace-api/internal/httperr"
	"github.com/agriconnect/marketplace-api/internal/httpresp"
	"github.com/agriconnect/marketplace-api/internal/middleware"
	ucProduct "github.com/agriconnect/marketplace-api/internal/usecase/product"
)

// ======================================================
// HANDLER
// ======================================================

type ProductHandler struct {
	listAllUC     *ucProduct.ListAllProducts
	listMineUC    *ucProduct.ListMyProducts
	createUC      *ucProduct.CreateProduct
	deleteUC      *ucProduct.DeleteProduct
	attachImageUC *ucProduct.AttachProductImage
}

func NewProductHandler(
	listAllUC *ucProduct.ListAllProducts,
	listMineUC *ucProduct.ListMyProducts,
	createUC *ucProduct.CreateProduct,
	deleteUC *ucProduct.DeleteProduct,
	attachImageUC *ucProduct.AttachProductImage,
) *ProductHandler {
	return &ProductHandler{
		listAllUC:     listAllUC,
		listMineUC:    listMineUC,
		createUC:      createUC,
		deleteUC:      deleteUC,
		attachImageUC: attachImageUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateProductRequest struct {
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"image_url"`
	Contact        string   `json:"contact"`
	PaymentMethods []string `json:"payment_methods"`
}

// ======================================================
// PUBLIC CATALOG
// ======================================================

func (h *ProductHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		Category: c.Query("category"),
		Query:    c.Query("query"),
	}

	items, err := h.listAllUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_products", err.Error())
		return
	}

	httpresp.OK(c, items)
}

// ======================================================
// OWNER LISTINGS
// ======================================================

func (h *ProductHandler) MyListings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	products, err := h.listMineUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_products", "Failed to fetch user listings.")
		return
	}

	httpresp.OK(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	product, err := h.createUC.Execute(c.Request.Context(), userID, ucProduct.CreateProductInput{
		Name:           req.Name,
		Price:          req.Price,
		Category:       req.Category,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		Contact:        req.Contact,
		PaymentMethods: req.PaymentMethods,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error_code": "validation_failed",
				"message":    ve.Error(),
				"violations": ve.Violations,
			})
			return
		}
		httperr.Internal(c, "failed_to_create_product", err.Error())
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	productID := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), userID, productID); err != nil {
		switch {
		case httperr.IsBusiness(err, "product_not_found"):
			httperr.NotFound(c, "product_not_found", "Product not found")
		case httperr.IsBusiness(err, "not_owner"):
			httperr.Forbidden(c, "not_owner", "Forbidden: You do not own this listing")
		default:
			httperr.Internal(c, "failed_to_delete_product", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// ======================================================
// IMAGE UPLOAD
// ======================================================

func (h *ProductHandler) UploadImage(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	productID := c.Param("id")

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read uploaded file.")
		return
	}
	defer f.Close()

	product, err := h.attachImageUC.Execute(c.Request.Context(), userID, productID, f)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "product_not_found"):
			httperr.NotFound(c, "product_not_found", "Product not found")
		case httperr.IsBusiness(err, "not_owner"):
			httperr.Forbidden(c, "not_owner", "Forbidden: You do not own this listing")
		case httperr.IsBusiness(err, "invalid_image"):
			httperr.BadRequest(c, "invalid_image", "Image must be a decodable jpeg, png or webp")
		default:
			httperr.Internal(c, "failed_to_upload_image", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, product)
}
