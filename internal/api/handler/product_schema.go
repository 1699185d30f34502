package handler

// --- Request / Response types ---

type productRequest struct {
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	BasePrice     textNumber            `json:"basePrice"     swaggertype:"string" example:"100"`
	ExchangeRates map[string]textNumber `json:"exchangeRates" swaggertype:"object"`
	Images        []string              `json:"images"`
	InStock       *bool                 `json:"inStock"`
	Featured      bool                  `json:"featured"`
}

// productRow is one line of the product list.
type productRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Placeholder  string `json:"placeholder,omitempty"`
	BasePrice    string `json:"basePrice"`
	Currency     string `json:"currency,omitempty"`
	DisplayPrice string `json:"displayPrice,omitempty"`
	InStock      bool   `json:"inStock"`
	Featured     bool   `json:"featured"`
}

type productWriteResponse struct {
	Product productRow               `json:"product"`
	List    listResponse[productRow] `json:"list"`
}

type productDeleteResponse struct {
	List listResponse[productRow] `json:"list"`
}
