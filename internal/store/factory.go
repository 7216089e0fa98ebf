package store

import (
	"tenantly.app/api-server/core/db"
)

// Stores vends store implementations bound to a single DBTX, which is either
// the connection pool or an open transaction.
type Stores struct {
	db db.DBTX
}

func NewStores(dbtx db.DBTX) *Stores {
	return &Stores{db: dbtx}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.db)
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.db)
}

func (s *Stores) Projects() ProjectStore {
	return newProjectStore(s.db)
}
