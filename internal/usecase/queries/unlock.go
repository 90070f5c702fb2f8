package queries

import (
	"context"

	"casegate/internal/domain/unlock"
	"casegate/internal/infra"
	"casegate/internal/pkg/errs"
)

//go:generate mockgen -source=unlock.go -destination=../../../tests/mock/queries/unlock.go -package=queriesmock
type UnlockQueries interface {
	CheckRedemption(ctx context.Context, caseStudyID, rawToken string) (*RedemptionView, error)
	ListUnlocks(ctx context.Context, filter UnlockListFilter) ([]UnlockView, error)
}

type UnlockReadStore interface {
	FindByContentAndToken(ctx context.Context, contentID unlock.ContentID, token unlock.Token) (*RedemptionView, error)
	List(ctx context.Context, filter UnlockListFilter) ([]UnlockView, error)
}

type unlockQueriesImpl struct {
	readStore UnlockReadStore
}

func NewUnlockQueries(readStore UnlockReadStore) UnlockQueries {
	return &unlockQueriesImpl{
		readStore: readStore,
	}
}

// CheckRedemption answers whether rawToken unlocks caseStudyID. Malformed
// input is reported as not found without touching the store.
func (q *unlockQueriesImpl) CheckRedemption(ctx context.Context, caseStudyID, rawToken string) (*RedemptionView, error) {
	contentID, err := unlock.NewContentID(caseStudyID)
	if err != nil {
		return nil, errs.ErrRedemptionNotFound
	}
	token, err := unlock.ParseToken(rawToken)
	if err != nil {
		return nil, errs.ErrRedemptionNotFound
	}

	view, err := q.readStore.FindByContentAndToken(ctx, contentID, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRedemptionNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to check redemption"), errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *unlockQueriesImpl) ListUnlocks(ctx context.Context, filter UnlockListFilter) ([]UnlockView, error) {
	filter = filter.Normalize()
	if filter.CaseStudyID != "" && !unlock.IsValidContentID(filter.CaseStudyID) {
		return nil, errs.Mark(unlock.ErrInvalidContentID, errs.ErrValidation)
	}

	views, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list unlocks"), errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
