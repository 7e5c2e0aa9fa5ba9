package controller

import (
	"log"
	"strings"

	"alumnihub_backend/internals/features/shop/products/dto"
	"alumnihub_backend/internals/features/shop/products/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// POST /api/a/products
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	product := model.ProductModel{
		ProductSchoolID:    sess.SchoolID,
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		ProductPrice:       req.ProductPrice,
		ProductStock:       req.ProductStock,
		ProductIsActive:    true,
	}
	if err := ctrl.DB.Create(&product).Error; err != nil {
		log.Printf("[ERROR] create product: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create product")
	}

	return helper.JsonCreated(c, "Product created", dto.ToProductResponse(&product))
}

// GET /api/u/products
// Member storefront: active products only, searchable.
func (ctrl *ProductController) BrowseProducts(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.ProductModel{}).
		Where("product_school_id = ? AND product_is_active = TRUE", sess.SchoolID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		tx = tx.Where("(product_name ILIKE ? OR product_description ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count products")
	}

	var products []model.ProductModel
	if err := tx.
		Order("product_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch products")
	}

	return helper.JsonList(c, "Products fetched", dto.ToProductResponseList(products),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/products
// Management view includes inactive products.
func (ctrl *ProductController) ListProducts(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.ProductModel{}).
		Where("product_school_id = ?", sess.SchoolID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count products")
	}

	var products []model.ProductModel
	if err := tx.
		Order("product_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch products")
	}

	return helper.JsonList(c, "Products fetched", dto.ToProductResponseList(products),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/products/:id
func (ctrl *ProductController) GetProductByID(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var product model.ProductModel
	if err := ctrl.DB.
		Where("product_id = ? AND product_school_id = ?", productID, sess.SchoolID).
		First(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
	}

	return helper.JsonOK(c, "Product fetched", dto.ToProductResponse(&product))
}

// PATCH /api/a/products/:id
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var product model.ProductModel
	if err := ctrl.DB.
		Where("product_id = ? AND product_school_id = ?", productID, sess.SchoolID).
		First(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
	}

	var req dto.ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.ProductName != nil {
		updates["product_name"] = *req.ProductName
	}
	if req.ProductDescription != nil {
		updates["product_description"] = *req.ProductDescription
	}
	if req.ProductPrice != nil {
		updates["product_price"] = *req.ProductPrice
	}
	if req.ProductStock != nil {
		updates["product_stock"] = *req.ProductStock
	}
	if req.ProductIsActive != nil {
		updates["product_is_active"] = *req.ProductIsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&product).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update product %s: %v", productID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update product")
	}
	if err := ctrl.DB.Where("product_id = ?", productID).First(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload product")
	}

	return helper.JsonUpdated(c, "Product updated", dto.ToProductResponse(&product))
}

// PATCH /api/a/products/:id/image
// Multipart field "image".
func (ctrl *ProductController) UploadImage(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var product model.ProductModel
	if err := ctrl.DB.
		Where("product_id = ? AND product_school_id = ?", productID, sess.SchoolID).
		First(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Image file is required")
	}

	publicURL, err := helper.UploadImageToStorage("product-images", fileHeader)
	if err != nil {
		log.Printf("[ERROR] upload product image: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
	}

	oldURL := product.ProductImageURL
	if err := ctrl.DB.Model(&product).Update("product_image_url", publicURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save image URL")
	}
	if oldURL != "" {
		if err := helper.DeleteFromStorage(oldURL); err != nil {
			log.Printf("[INFO] old product image not deleted: %v", err)
		}
	}

	product.ProductImageURL = publicURL
	return helper.JsonUpdated(c, "Image updated", dto.ToProductResponse(&product))
}

// DELETE /api/a/products/:id
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var product model.ProductModel
	if err := ctrl.DB.
		Where("product_id = ? AND product_school_id = ?", productID, sess.SchoolID).
		First(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
	}

	if err := ctrl.DB.Delete(&product).Error; err != nil {
		log.Printf("[ERROR] delete product %s: %v", productID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete product")
	}

	return helper.JsonDeleted(c, "Product deleted", fiber.Map{"product_id": productID})
}
