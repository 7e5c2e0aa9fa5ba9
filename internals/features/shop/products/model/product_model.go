package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prices are stored in kobo, the gateway's smallest unit.
type ProductModel struct {
	ProductID          uuid.UUID `gorm:"column:product_id;type:uuid;default:gen_random_uuid();primaryKey" json:"product_id"`
	ProductSchoolID    uuid.UUID `gorm:"column:product_school_id;type:uuid;not null;index:idx_products_school_id" json:"product_school_id"`
	ProductName        string    `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	ProductDescription string    `gorm:"column:product_description;type:text" json:"product_description"`

	ProductPrice    int64  `gorm:"column:product_price;not null" json:"product_price"`
	ProductStock    int    `gorm:"column:product_stock;not null;default:0" json:"product_stock"`
	ProductImageURL string `gorm:"column:product_image_url;type:text" json:"product_image_url"`
	ProductIsActive bool   `gorm:"column:product_is_active;not null;default:true" json:"product_is_active"`

	ProductCreatedAt time.Time      `gorm:"column:product_created_at;type:timestamptz;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt time.Time      `gorm:"column:product_updated_at;type:timestamptz;autoUpdateTime" json:"product_updated_at"`
	ProductDeletedAt gorm.DeletedAt `gorm:"column:product_deleted_at;type:timestamptz;index" json:"product_deleted_at,omitempty"`
}

func (ProductModel) TableName() string {
	return "products"
}
