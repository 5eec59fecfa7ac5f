package dto

// CreateWorkerRequest entrada para registrar un trabajador (receptor de entregas).
type CreateWorkerRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Gender string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Mobile string `json:"mobile" validate:"omitempty,max=20"`
}

// WorkerResponse salida de un trabajador.
type WorkerResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Mobile    string `json:"mobile"`
}

// WorkerListResponse lista paginada de trabajadores.
type WorkerListResponse struct {
	Items []WorkerResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
