package entity

// Worker representa un receptor de distribuciones. No es un login del
// sistema: se registra sobre la marcha durante una sesión de entrega.
type Worker struct {
	ID        string
	CompanyID string
	Name      string
	Gender    string // Male, Female, Other
	Mobile    string
}
