package entity

import "time"

// Company representa una organización/tenant del sistema. Toda entidad
// restante se aísla por CompanyID. Se crea una vez en el setup inicial.
type Company struct {
	ID        string
	Name      string // único en todo el sistema
	CreatedAt time.Time
}
