package model

import "time"

type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Image       string    `json:"image" db:"image"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Status      string    `json:"status" db:"status"`
	Rating      float64   `json:"rating" db:"rating"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Category    string  `json:"category" validate:"required,max=100"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Status      string  `json:"status"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
}

// Pagination is the metadata block accompanying a product listing.
type Pagination struct {
	CurrentPage     int `json:"currentPage"`
	TotalPages      int `json:"totalPages"`
	TotalProducts   int `json:"totalProducts"`
	ProductsPerPage int `json:"productsPerPage"`
}

// ProductList is the listing response envelope.
type ProductList struct {
	Status     bool       `json:"status"`
	Error      string     `json:"error,omitempty"`
	Data       []Product  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Comment struct {
	ID        string    `json:"id" db:"id"`
	ProductID string    `json:"product_id" db:"product_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type AddCommentRequest struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}
