//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/pkg/pgconv"
	"lease-engine/internal/pkg/props"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOfferQueries struct {
	mock.Mock
}

func (m *MockOfferQueries) GetOffer(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Offer, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Offer), args.Error(1)
}

func (m *MockOfferQueries) ListOffersByName(ctx context.Context, db query.DBTX, name string) ([]query.Offer, error) {
	args := m.Called(ctx, db, name)
	return args.Get(0).([]query.Offer), args.Error(1)
}

func (m *MockOfferQueries) ListOffers(ctx context.Context, db query.DBTX, arg query.ListOffersParams) ([]query.Offer, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.Offer), args.Error(1)
}

func (m *MockOfferQueries) CreateOffer(ctx context.Context, db query.DBTX, arg query.Offer) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockOfferQueries) UpdateOffer(ctx context.Context, db query.DBTX, arg query.UpdateOfferParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfferQueries) DeleteOffer(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// query.DBTX implementation; the repository only hands it through
func (m *MockOfferQueries) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockOfferQueries) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockOfferQueries) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

func offerRow(id uuid.UUID, start, end time.Time) query.Offer {
	return query.Offer{
		ID:           id,
		Name:         "node-1-offer",
		ProjectID:    "owner",
		ResourceType: resource.TypeIronicNode,
		ResourceID:   "node-1",
		StartTime:    pgconv.TimeToPgtype(start),
		EndTime:      pgconv.TimeToPgtype(end),
		Status:       string(offer.StatusAvailable),
		Properties:   []byte(`{"cpu":"x86"}`),
		CreatedAt:    pgconv.TimeToPgtype(start),
		UpdatedAt:    pgconv.TimeToPgtype(start),
	}
}

func TestOfferRepository_FindByID(t *testing.T) {
	id := uuid.New()
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	tests := []struct {
		name     string
		row      query.Offer
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row:  offerRow(id, start, end),
		},
		{
			name:     "not found",
			mockErr:  pgx.ErrNoRows,
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockOfferQueries)
			mockQueries.On("GetOffer", mock.Anything, mock.Anything, id).Return(tt.row, tt.mockErr)

			repo := NewOfferRepository(mockQueries, mockQueries)
			got, err := repo.FindByID(context.Background(), id)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, got.ID())
				assert.True(t, got.Slot().Start().Equal(start))
				assert.True(t, got.Slot().End().Equal(end))
				assert.Equal(t, offer.StatusAvailable, got.Status())
				assert.Equal(t, "x86", got.Properties()["cpu"])
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestOfferRepository_ListMapsFilter(t *testing.T) {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	window, err := interval.New(start, start.Add(time.Hour))
	require.NoError(t, err)
	ref := resource.Ref{Type: resource.TypeIronicNode, ID: "node-1"}

	filter := shared.OfferFilter{
		Resource:    &ref,
		Statuses:    []offer.Status{offer.StatusAvailable},
		Lessee:      &shared.LesseeFilter{ProjectID: "child", Lineage: []string{"child", "parent"}},
		Time:        &shared.TimeFilter{Start: window.Start(), End: window.End(), Mode: shared.TimeModeWithin},
		Overlapping: &window,
	}

	mockQueries := new(MockOfferQueries)
	mockQueries.On("ListOffers", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.ListOffersParams) bool {
		return p.ResourceType.String == ref.Type &&
			p.ResourceID.String == ref.ID &&
			assert.ObjectsAreEqual([]string{"available"}, p.Statuses) &&
			p.LesseeProjectID.String == "child" &&
			len(p.LesseeLineage) == 2 &&
			p.WithinStart.Valid && p.WithinEnd.Valid &&
			!p.CoversStart.Valid && !p.CoversEnd.Valid &&
			p.OverlapStart.Valid && p.OverlapEnd.Valid &&
			!p.EndsBy.Valid
	})).Return([]query.Offer{offerRow(uuid.New(), start, start.Add(time.Hour))}, nil)

	repo := NewOfferRepository(mockQueries, mockQueries)
	got, err := repo.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	mockQueries.AssertExpectations(t)
}

func TestOfferRepository_UpdateMissingRow(t *testing.T) {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	slot, err := interval.New(start, start.Add(time.Hour))
	require.NoError(t, err)
	o, err := offer.New(offer.NewParams{
		ProjectID:  "owner",
		Resource:   resource.Ref{Type: resource.TypeDummyNode, ID: "d1"},
		Slot:       slot,
		Properties: props.Properties{},
	}, start)
	require.NoError(t, err)

	mockQueries := new(MockOfferQueries)
	mockQueries.On("UpdateOffer", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.UpdateOfferParams) bool {
		return p.ID == o.ID() && p.Status == "available"
	})).Return(int64(0), nil)

	repo := NewOfferRepository(mockQueries, mockQueries)
	err = repo.Update(context.Background(), o)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	mockQueries.AssertExpectations(t)
}

func TestOfferRepository_CreateDuplicate(t *testing.T) {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	slot, err := interval.New(start, start.Add(time.Hour))
	require.NoError(t, err)
	o, err := offer.New(offer.NewParams{
		ProjectID: "owner",
		Resource:  resource.Ref{Type: resource.TypeDummyNode, ID: "d1"},
		Slot:      slot,
	}, start)
	require.NoError(t, err)

	mockQueries := new(MockOfferQueries)
	mockQueries.On("CreateOffer", mock.Anything, mock.Anything, mock.AnythingOfType("query.Offer")).
		Return(&pgconn.PgError{Code: pgconv.CodeUniqueViolation})

	repo := NewOfferRepository(mockQueries, mockQueries)
	err = repo.Create(context.Background(), o)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	mockQueries.AssertExpectations(t)
}
