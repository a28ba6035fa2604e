package models

import "time"

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"password,omitempty" bson:"password"`
	FirstName     string    `json:"first_name" bson:"firstname"`
	LastName      string    `json:"last_name" bson:"lastname"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	IsActive      bool      `json:"is_active" bson:"isactive"`
	CreatedAt     time.Time `json:"created_at" bson:"createdat"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updatedat"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"-" bson:"last_login,omitempty"`
}
