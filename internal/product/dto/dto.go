package dto

type SearchProductsRequest struct {
	Query    string `json:"query"`
	Audience string `json:"audience,omitempty"`
}

type ProductDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Reference    string   `json:"reference"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory,omitempty"`
	Images       []string `json:"images"`
	Price        *float64 `json:"price,omitempty"`
	Availability string   `json:"availability"`
	Featured     bool     `json:"featured"`
	Audience     string   `json:"audience,omitempty"`
}

type SearchProductsResponse struct {
	Products []ProductDTO `json:"products"`
}
