// Package transport defines the request/response DTOs for the quotes module.
package transport

// QuoteRequest is the POST /quote body.
type QuoteRequest struct {
	LengthMm  float64 `json:"lengthMm"`
	Thickness string  `json:"thickness"`
	BaseSku   string  `json:"baseSku"`
}

// QuoteResponse is returned after the remote catalog entry has been created.
type QuoteResponse struct {
	OK        bool    `json:"ok"`
	ProductID int64   `json:"productId"`
	Price     float64 `json:"price"`
	Area      float64 `json:"area"`
	SKU       string  `json:"sku"`
}
