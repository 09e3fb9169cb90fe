package models

// Product is a single record of the vendor product feed. Records are
// immutable once loaded; the feed is re-read wholesale on sync.
type Product struct {
	VendorCode  string            `json:"vendorCode"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Picture     string            `json:"picture,omitempty"`
	Price       string            `json:"price,omitempty"`
	Params      map[string]string `json:"params,omitempty"`
}
