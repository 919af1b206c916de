package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de revisión de una participación.
const (
	EntryPending = "pendiente"
	EntryValid   = "valido"
	EntryInvalid = "invalido"
)

// ContestEntry participación en el concurso promocional (una boleta de compra).
type ContestEntry struct {
	ID            string
	CompanyID     string
	BranchID      *string
	RUT           string
	Name          string
	Email         string
	Phone         string
	ReceiptNumber string // número de boleta
	Amount        decimal.Decimal
	ReceiptDate   *time.Time
	ImageURL      string
	Status        string
	ReviewNote    string
	Season        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
