package models

import "time"

// Product is a catalog entry. IDs are assigned by the store from a
// monotonic sequence so that peer services can reference products by
// small integer ids.
type Product struct {
	ID          int64     `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Stock       int64     `json:"stock" bson:"stock"`
	SellerID    int64     `json:"seller_id" bson:"seller_id"`
	IsDeleted   bool      `json:"-" bson:"is_deleted"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// CreateProductRequest is the POST /products body.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       *int64   `json:"stock" binding:"required,gte=0"`
	SellerID    int64    `json:"seller_id" binding:"omitempty,gt=0"`
}

// ProductUpdate holds the updatable fields of a product. Nil means
// "leave unchanged".
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Stock       *int64   `json:"stock,omitempty" binding:"omitempty,gte=0"`
	SellerID    *int64   `json:"seller_id,omitempty" binding:"omitempty,gt=0"`
}

// UpdateHistoryRequest is the POST /recommendations/update-history body.
// Both ids are required integers; pointers distinguish missing fields
// from zero values.
type UpdateHistoryRequest struct {
	UserID    *int64 `json:"user_id" binding:"required"`
	ProductID *int64 `json:"product_id" binding:"required"`
}
