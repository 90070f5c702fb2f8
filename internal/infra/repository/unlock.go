package repository

import (
	"context"
	"time"

	"casegate/internal/domain/unlock"
	"casegate/internal/infra"
	"casegate/internal/infra/db"
	"casegate/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const uniqueEmailCaseStudy = "case_study_unlocks_email_case_study_key"

const (
	findUnlockByEmailAndCaseStudySQL = `
SELECT id, email, case_study_id, token, unlocked_at, created_at
FROM case_study_unlocks
WHERE email = $1 AND case_study_id = $2`

	insertUnlockSQL = `
INSERT INTO case_study_unlocks (id, email, case_study_id, token, unlocked_at, created_at)
VALUES ($1, $2, $3, $4, NULL, $5)`

	markUnlockRedeemedSQL = `
UPDATE case_study_unlocks
SET unlocked_at = $3
WHERE case_study_id = $1 AND token = $2 AND unlocked_at IS NULL`
)

type UnlockRepository struct {
	db db.DBTX
}

func NewUnlockRepository(dbtx db.DBTX) *UnlockRepository {
	return &UnlockRepository{db: dbtx}
}

func (r *UnlockRepository) FindByEmailAndContent(ctx context.Context, email unlock.Email, contentID unlock.ContentID) (*unlock.Record, error) {
	row := r.db.QueryRow(ctx, findUnlockByEmailAndCaseStudySQL, email.Value(), contentID.Value())

	rec, err := scanUnlockRecord(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unlock record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find unlock record", err)
	}
	return rec, nil
}

// Insert reports KindDuplicateKey when another request created the same
// (email, case study) pair first.
func (r *UnlockRepository) Insert(ctx context.Context, rec *unlock.Record) error {
	_, err := r.db.Exec(ctx, insertUnlockSQL,
		rec.ID(),
		rec.Email().Value(),
		rec.ContentID().Value(),
		rec.Token().Value(),
		pgconv.TimeToPgtype(rec.CreatedAt()),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err, uniqueEmailCaseStudy) {
			return infra.WrapRepoErr("unlock record already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert unlock record", err)
	}
	return nil
}

// MarkUnlocked stamps the first redemption; later calls are no-ops and return false.
func (r *UnlockRepository) MarkUnlocked(ctx context.Context, contentID unlock.ContentID, token unlock.Token, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, markUnlockRedeemedSQL, contentID.Value(), token.Value(), pgconv.TimeToPgtype(at))
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark unlock redeemed", err)
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUnlockRecord(row rowScanner) (*unlock.Record, error) {
	var (
		id         uuid.UUID
		email      string
		caseStudy  string
		token      string
		unlockedAt pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &email, &caseStudy, &token, &unlockedAt, &createdAt); err != nil {
		return nil, err
	}
	return toUnlockRecord(id, email, caseStudy, token, unlockedAt, createdAt)
}

func toUnlockRecord(id uuid.UUID, email, caseStudy, token string, unlockedAt, createdAt pgtype.Timestamptz) (*unlock.Record, error) {
	e, err := unlock.NewEmail(email)
	if err != nil {
		return nil, err
	}
	c, err := unlock.NewContentID(caseStudy)
	if err != nil {
		return nil, err
	}
	t, err := unlock.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return unlock.ReconstructRecord(id, e, c, t, pgconv.TimePtrFromPgtype(unlockedAt), pgconv.TimeFromPgtype(createdAt)), nil
}
