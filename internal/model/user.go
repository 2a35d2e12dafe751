package model

import "golang.org/x/crypto/bcrypt"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User represents an authenticated user. Role is carried into the token as
// an opaque claim; no privilege checks hang off it.
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username" validate:"required"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Role     string `gorm:"type:varchar(50);not null;default:'viewer'" json:"role"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
