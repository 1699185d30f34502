package form

import "github.com/shopdesk/store-admin/internal/core/domain"

// CategoryForm is the raw state of the category editor.
type CategoryForm struct {
	Name        string
	Icon        string
	Description string
}

// NewCategoryForm pre-fills the editor from c, or returns an empty form.
func NewCategoryForm(c *domain.Category) CategoryForm {
	if c == nil {
		return CategoryForm{}
	}
	return CategoryForm{Name: c.Name, Icon: c.Icon, Description: c.Description}
}

// Build turns the form into a category.
func (f CategoryForm) Build() (domain.Category, error) {
	verr := &ValidationError{}
	if f.Name == "" {
		verr.add("name", "name is required")
	}
	if err := verr.orNil(); err != nil {
		return domain.Category{}, err
	}
	return domain.Category{Name: f.Name, Icon: f.Icon, Description: f.Description}, nil
}
