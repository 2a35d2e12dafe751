package model

type Supplier struct {
	BaseModel
	Name  string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email string `gorm:"type:varchar(255)" json:"email,omitempty" validate:"omitempty,email"`
	Phone string `gorm:"type:varchar(20)" json:"phone,omitempty"`
}

type Warehouse struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Location string `gorm:"type:varchar(255)" json:"location,omitempty"`
}
