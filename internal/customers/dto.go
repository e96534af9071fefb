package customer

import "github.com/anagarciahdz/grocerhub-backend/pkg/db/models"

// CustomerDTO is the read shape for customer endpoints.
type CustomerDTO struct {
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
}

// CustomerInput holds the validated payload for creating or replacing a
// customer. Create and update share one shape.
type CustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

func newCustomerDTO(row models.Customer) CustomerDTO {
	return CustomerDTO{
		CustomerID: row.CustomerID,
		Name:       row.Name,
		Phone:      row.Phone,
		Email:      row.Email,
		Address:    row.Address,
	}
}
