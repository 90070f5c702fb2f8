package repository

import (
	"context"

	"casegate/internal/domain/contact"
	"casegate/internal/infra"
	"casegate/internal/infra/db"
	"casegate/internal/pkg/pgconv"
)

const insertContactRequestSQL = `
INSERT INTO contact_requests (id, name, email, organization, phone, message, source, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type ContactRepository struct {
	db db.DBTX
}

func NewContactRepository(dbtx db.DBTX) *ContactRepository {
	return &ContactRepository{db: dbtx}
}

func (r *ContactRepository) Insert(ctx context.Context, req *contact.Request) error {
	_, err := r.db.Exec(ctx, insertContactRequestSQL,
		req.ID(),
		req.Name(),
		req.Email().Value(),
		pgconv.OptionalStringToPgtype(req.Organization()),
		pgconv.OptionalStringToPgtype(req.Phone()),
		req.Message(),
		string(req.Source()),
		pgconv.TimeToPgtype(req.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert contact request", err)
	}
	return nil
}
