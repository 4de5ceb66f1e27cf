package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a schema example for the "user" collection. No endpoint exercises
// it; the shape and its constraints are kept for the validation contract.
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Address  string             `json:"address" bson:"address"`
	Age      *int               `json:"age,omitempty" bson:"age,omitempty"`
	IsActive bool               `json:"is_active" bson:"is_active"`
}

// UserCreate carries the creation payload; is_active defaults to true when
// the client omits it.
type UserCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Age      *int   `json:"age"`
	IsActive *bool  `json:"is_active"`
}

func (u *UserCreate) Validate() error {
	var problems []string
	if u.Name == "" {
		problems = append(problems, "name is required")
	}
	if u.Email == "" {
		problems = append(problems, "email is required")
	}
	if u.Address == "" {
		problems = append(problems, "address is required")
	}
	if u.Age != nil && (*u.Age < 0 || *u.Age > 120) {
		problems = append(problems, fmt.Sprintf("age must be between 0 and 120, got %d", *u.Age))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func (u *UserCreate) Record() *User {
	active := true
	if u.IsActive != nil {
		active = *u.IsActive
	}
	return &User{
		Name:     u.Name,
		Email:    u.Email,
		Address:  u.Address,
		Age:      u.Age,
		IsActive: active,
	}
}
