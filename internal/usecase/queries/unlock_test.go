//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"casegate/internal/domain/unlock"
	"casegate/internal/infra"
	"casegate/internal/pkg/errs"
	"casegate/internal/usecase/queries"
	queriesmock "casegate/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const storedToken = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestCheckRedemption(t *testing.T) {
	view := &queries.RedemptionView{
		ID:          uuid.New(),
		Email:       "a@b.de",
		CaseStudyID: "cs1",
		Token:       storedToken,
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name      string
		contentID string
		token     string
		setup     func(rs *queriesmock.MockUnlockReadStore)
		wantErr   error
	}{
		{
			name:      "exact match",
			contentID: "cs1",
			token:     storedToken,
			setup: func(rs *queriesmock.MockUnlockReadStore) {
				rs.EXPECT().FindByContentAndToken(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c unlock.ContentID, tok unlock.Token) (*queries.RedemptionView, error) {
						assert.Equal(t, "cs1", c.Value())
						assert.Equal(t, storedToken, tok.Value())
						return view, nil
					})
			},
		},
		{
			name:      "one character off",
			contentID: "cs1",
			token:     storedToken[:63] + "0",
			setup: func(rs *queriesmock.MockUnlockReadStore) {
				rs.EXPECT().FindByContentAndToken(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))
			},
			wantErr: errs.ErrRedemptionNotFound,
		},
		{
			name:      "upper-case token never reaches the store",
			contentID: "cs1",
			token:     "0123456789ABCDEF0123456789abcdef0123456789abcdef0123456789abcdef",
			setup:     func(rs *queriesmock.MockUnlockReadStore) {},
			wantErr:   errs.ErrRedemptionNotFound,
		},
		{
			name:      "empty token",
			contentID: "cs1",
			setup:     func(rs *queriesmock.MockUnlockReadStore) {},
			wantErr:   errs.ErrRedemptionNotFound,
		},
		{
			name:      "malformed case study",
			contentID: "../cs1",
			token:     storedToken,
			setup:     func(rs *queriesmock.MockUnlockReadStore) {},
			wantErr:   errs.ErrRedemptionNotFound,
		},
		{
			name:      "store failure",
			contentID: "cs1",
			token:     storedToken,
			setup: func(rs *queriesmock.MockUnlockReadStore) {
				rs.EXPECT().FindByContentAndToken(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, infra.WrapRepoErr("boom", assert.AnError))
			},
			wantErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rs := queriesmock.NewMockUnlockReadStore(ctrl)
			tt.setup(rs)

			got, err := queries.NewUnlockQueries(rs).CheckRedemption(context.Background(), tt.contentID, tt.token)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestListUnlocks_ClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default", 0, queries.DefaultListLimit},
		{"negative", -5, queries.DefaultListLimit},
		{"within range", 10, 10},
		{"above max", 1000, queries.MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rs := queriesmock.NewMockUnlockReadStore(ctrl)
			rs.EXPECT().List(gomock.Any(), queries.UnlockListFilter{CaseStudyID: "cs1", Limit: tt.wantLimit}).
				Return([]queries.UnlockView{}, nil)

			_, err := queries.NewUnlockQueries(rs).ListUnlocks(context.Background(), queries.UnlockListFilter{CaseStudyID: "cs1", Limit: tt.limit})

			assert.NoError(t, err)
		})
	}
}

func TestListUnlocks_RejectsBadFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	rs := queriesmock.NewMockUnlockReadStore(ctrl)

	_, err := queries.NewUnlockQueries(rs).ListUnlocks(context.Background(), queries.UnlockListFilter{CaseStudyID: "a b"})

	assert.True(t, errs.Is(err, errs.ErrValidation))
}
