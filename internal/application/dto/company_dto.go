package dto

import "time"

// SetupCompanyRequest entrada para crear la empresa (setup inicial).
// Los nombres JSON son camelCase: el cliente React original envía así los campos.
type SetupCompanyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
