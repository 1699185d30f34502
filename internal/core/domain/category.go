package domain

// Category groups products by name. Products reference it by Name, not ID.
type Category struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
