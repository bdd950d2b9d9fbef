// Package query holds the hand-written SQL used by repositories and read stores.
// Every method takes the DBTX to run on so the same Queries value serves pooled
// reads and transactional writes.
package query

import (
	"workshop-booking/internal/infra/db"
)

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

type DBTX = db.DBTX
