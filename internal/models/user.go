package models

// User is the local profile of an identity managed by the external
// identity provider. UserID is the provider's opaque subject.
type User struct {
	Base
	UserID      string `gorm:"not null;uniqueIndex" json:"userId"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
