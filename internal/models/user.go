package models

import "golang.org/x/crypto/bcrypt"

// Roles a user can hold. The role determines which operation set the
// caller may invoke; it is fixed at registration.
const (
	RoleAdmin  = "admin"
	RoleOwner  = "owner"
	RoleRenter = "renter"
)

// DefaultProfileImage is assigned until the user uploads a photo.
const DefaultProfileImage = "default.png"

// User represents an account in the system: an admin, a room owner or a
// renter. The password is stored only as a bcrypt hash and never leaves
// the server.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100" json:"name"`
	Email        string `gorm:"size:120;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:200" json:"-"`
	Role         string `gorm:"size:20;index" json:"role"`
	ProfileImage string `gorm:"size:255;default:default.png" json:"profile_image"`
}

// SetPassword hashes the plaintext password into PasswordHash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
