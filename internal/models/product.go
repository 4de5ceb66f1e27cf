package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a schema example for the "product" collection, not exercised by
// any endpoint.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
}

// ProductCreate carries the creation payload; in_stock defaults to true when
// the client omits it.
type ProductCreate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	InStock     *bool    `json:"in_stock"`
}

func (p *ProductCreate) Validate() error {
	var problems []string
	if p.Title == "" {
		problems = append(problems, "title is required")
	}
	if p.Category == "" {
		problems = append(problems, "category is required")
	}
	if p.Price == nil {
		problems = append(problems, "price is required")
	} else if *p.Price < 0 {
		problems = append(problems, fmt.Sprintf("price must be non-negative, got %v", *p.Price))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func (p *ProductCreate) Record() *Product {
	inStock := true
	if p.InStock != nil {
		inStock = *p.InStock
	}
	var price float64
	if p.Price != nil {
		price = *p.Price
	}
	return &Product{
		Title:       p.Title,
		Description: p.Description,
		Price:       price,
		Category:    p.Category,
		InStock:     inStock,
	}
}
