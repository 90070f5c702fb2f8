package readstore

import (
	"context"

	"casegate/internal/domain/unlock"
	"casegate/internal/infra"
	"casegate/internal/infra/db"
	"casegate/internal/pkg/pgconv"
	"casegate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findUnlockByCaseStudyAndTokenSQL = `
SELECT id, email, case_study_id, token, unlocked_at, created_at
FROM case_study_unlocks
WHERE case_study_id = $1 AND token = $2`

	listUnlocksSQL = `
SELECT id, email, case_study_id, unlocked_at, created_at
FROM case_study_unlocks
WHERE ($1::text = '' OR case_study_id = $1)
ORDER BY created_at DESC, id
LIMIT $2`
)

type UnlockReadStore struct {
	db db.DBTX
}

func NewUnlockReadStore(dbtx db.DBTX) *UnlockReadStore {
	return &UnlockReadStore{db: dbtx}
}

func (r *UnlockReadStore) FindByContentAndToken(ctx context.Context, contentID unlock.ContentID, token unlock.Token) (*queries.RedemptionView, error) {
	var (
		view       queries.RedemptionView
		unlockedAt pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findUnlockByCaseStudyAndTokenSQL, contentID.Value(), token.Value()).
		Scan(&view.ID, &view.Email, &view.CaseStudyID, &view.Token, &unlockedAt, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unlock record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find unlock record by token", err)
	}

	view.UnlockedAt = pgconv.TimePtrFromPgtype(unlockedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func (r *UnlockReadStore) List(ctx context.Context, filter queries.UnlockListFilter) ([]queries.UnlockView, error) {
	rows, err := r.db.Query(ctx, listUnlocksSQL, filter.CaseStudyID, filter.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unlock records", err)
	}
	defer rows.Close()

	views := make([]queries.UnlockView, 0, filter.Limit)
	for rows.Next() {
		var (
			id         uuid.UUID
			view       queries.UnlockView
			unlockedAt pgtype.Timestamptz
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &view.Email, &view.CaseStudyID, &unlockedAt, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan unlock record", err)
		}
		view.ID = id
		view.UnlockedAt = pgconv.TimePtrFromPgtype(unlockedAt)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate unlock records", err)
	}
	return views, nil
}
