package models

import "time"

// User represents a registered account, identified by its phone number.
// Users are created at registration and never deleted.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	PhoneNumber string    `json:"phone_number" gorm:"column:phone_number;uniqueIndex;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
