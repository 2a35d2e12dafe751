package model

type Product struct {
	BaseModel
	SKU      string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price    float64 `gorm:"default:0" json:"price"`
	Stock    int     `gorm:"default:0" json:"stock"`
	MinStock int     `gorm:"default:0" json:"min_stock"`
}
