package dto

import (
	"time"

	"alumnihub_backend/internals/features/shop/products/model"

	"github.com/google/uuid"
)

type ProductCreateRequest struct {
	ProductName        string `json:"product_name" validate:"required,max=255"`
	ProductDescription string `json:"product_description"`
	ProductPrice       int64  `json:"product_price" validate:"required,gte=0"`
	ProductStock       int    `json:"product_stock" validate:"omitempty,gte=0"`
}

type ProductUpdateRequest struct {
	ProductName        *string `json:"product_name" validate:"omitempty,max=255"`
	ProductDescription *string `json:"product_description"`
	ProductPrice       *int64  `json:"product_price" validate:"omitempty,gte=0"`
	ProductStock       *int    `json:"product_stock" validate:"omitempty,gte=0"`
	ProductIsActive    *bool   `json:"product_is_active"`
}

type ProductResponse struct {
	ProductID          uuid.UUID `json:"product_id"`
	ProductSchoolID    uuid.UUID `json:"product_school_id"`
	ProductName        string    `json:"product_name"`
	ProductDescription string    `json:"product_description"`
	ProductPrice       int64     `json:"product_price"`
	ProductStock       int       `json:"product_stock"`
	ProductImageURL    string    `json:"product_image_url"`
	ProductIsActive    bool      `json:"product_is_active"`
	ProductCreatedAt   time.Time `json:"product_created_at"`
}

func ToProductResponse(m *model.ProductModel) *ProductResponse {
	return &ProductResponse{
		ProductID:          m.ProductID,
		ProductSchoolID:    m.ProductSchoolID,
		ProductName:        m.ProductName,
		ProductDescription: m.ProductDescription,
		ProductPrice:       m.ProductPrice,
		ProductStock:       m.ProductStock,
		ProductImageURL:    m.ProductImageURL,
		ProductIsActive:    m.ProductIsActive,
		ProductCreatedAt:   m.ProductCreatedAt,
	}
}

func ToProductResponseList(models []model.ProductModel) []ProductResponse {
	result := make([]ProductResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToProductResponse(&models[i]))
	}
	return result
}
