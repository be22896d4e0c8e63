//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/infra/readstore"
	"lease-engine/internal/pkg/errs"
	readstoremock "lease-engine/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func TestResourceReadStore_Resolve(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		ident      string
		setupMock  func(*readstoremock.MockResourceReadQueries)
		wantID     string
		wantErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:  "success: resolved by name",
			ident: "rack1-node1",
			setupMock: func(m *readstoremock.MockResourceReadQueries) {
				m.EXPECT().GetResource(ctx, gomock.Any(), resource.TypeIronicNode, "rack1-node1").Return(query.Resource{
					ResourceType:   resource.TypeIronicNode,
					ResourceID:     "3f0c5b4e",
					Name:           "rack1-node1",
					OwnerProjectID: "owner",
				}, nil)
			},
			wantID: "3f0c5b4e",
		},
		{
			name:  "error: unknown resource",
			ident: "missing",
			setupMock: func(m *readstoremock.MockResourceReadQueries) {
				m.EXPECT().GetResource(ctx, gomock.Any(), resource.TypeIronicNode, "missing").Return(query.Resource{}, pgx.ErrNoRows)
			},
			wantErr:    errs.ErrResourceNotFound,
			expectKind: infra.KindNotFound,
		},
		{
			name:  "error: database error",
			ident: "node",
			setupMock: func(m *readstoremock.MockResourceReadQueries) {
				m.EXPECT().GetResource(ctx, gomock.Any(), resource.TypeIronicNode, "node").Return(query.Resource{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
			store := readstore.NewResourceReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			res, err := store.Resolve(ctx, resource.TypeIronicNode, tc.ident)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				if tc.wantErr != nil {
					assert.True(t, errs.Is(err, tc.wantErr))
				}
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, res.Ref().ID)
			assert.Equal(t, "owner", res.OwnerProjectID())
		})
	}
}

func TestResourceReadStore_ResolveRejectsBlankIdent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := readstore.NewResourceReadStore(readstoremock.NewMockResourceReadQueries(ctrl), &mockDBTX{})

	_, err := store.Resolve(context.Background(), resource.TypeIronicNode, "")

	require.Error(t, err)
}

func TestProjectReadStore(t *testing.T) {
	ctx := context.Background()

	t.Run("canonical id by name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockProjectReadQueries(ctrl)
		mockQueries.EXPECT().GetProject(ctx, gomock.Any(), "lessee").Return(query.Project{ID: "p-123", Name: "lessee"}, nil)

		id, err := readstore.NewProjectReadStore(mockQueries, &mockDBTX{}).Canonical(ctx, "lessee")

		require.NoError(t, err)
		assert.Equal(t, "p-123", id)
	})

	t.Run("unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockProjectReadQueries(ctrl)
		mockQueries.EXPECT().GetProject(ctx, gomock.Any(), "nope").Return(query.Project{}, pgx.ErrNoRows)

		_, err := readstore.NewProjectReadStore(mockQueries, &mockDBTX{}).Canonical(ctx, "nope")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrProjectNotFound))
	})

	t.Run("lineage nearest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockProjectReadQueries(ctrl)
		mockQueries.EXPECT().ListProjectLineage(ctx, gomock.Any(), "child").Return([]string{"child", "parent", "root"}, nil)

		ids, err := readstore.NewProjectReadStore(mockQueries, &mockDBTX{}).Lineage(ctx, "child")

		require.NoError(t, err)
		assert.Equal(t, []string{"child", "parent", "root"}, ids)
	})

	t.Run("empty lineage means unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockProjectReadQueries(ctrl)
		mockQueries.EXPECT().ListProjectLineage(ctx, gomock.Any(), "ghost").Return(nil, nil)

		_, err := readstore.NewProjectReadStore(mockQueries, &mockDBTX{}).Lineage(ctx, "ghost")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrProjectNotFound))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
