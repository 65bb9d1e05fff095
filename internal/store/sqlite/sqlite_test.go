package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecord(name string) ProfileRecord {
	return ProfileRecord{
		Name: name,
		Profile: domain.Profile{
			GrossIncome:   decimal.NewFromInt(75000),
			Dependents:    1,
			State:         "Texas",
			InvestPercent: decimal.RequireFromString("12.5"),
			StartingAge:   30,
		},
		Assumptions: domain.Assumptions{AnnualReturn: decimal.RequireFromString("0.07"), HorizonAge: 80},
	}
}

func TestSaveAndGetProfile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProfile(ctx, sampleRecord("alex")))

	rec, err := store.GetProfile(ctx, "alex")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "alex", rec.Name)
	assert.Equal(t, "alex", rec.Profile.Name)
	assert.True(t, rec.Profile.GrossIncome.Equal(decimal.NewFromInt(75000)))
	assert.True(t, rec.Profile.InvestPercent.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, 1, rec.Profile.Dependents)
	assert.Equal(t, "Texas", rec.Profile.State)
	assert.Equal(t, 30, rec.Profile.StartingAge)
	assert.True(t, rec.Assumptions.AnnualReturn.Equal(decimal.RequireFromString("0.07")))
	assert.Equal(t, 80, rec.Assumptions.HorizonAge)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestGetProfile_Missing(t *testing.T) {
	rec, err := newTestStore(t).GetProfile(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSaveProfile_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProfile(ctx, sampleRecord("alex")))
	first, err := store.GetProfile(ctx, "alex")
	require.NoError(t, err)

	updated := sampleRecord("alex")
	updated.Profile.State = "Oregon"
	updated.Profile.GrossIncome = decimal.NewFromInt(90000)
	require.NoError(t, store.SaveProfile(ctx, updated))

	rec, err := store.GetProfile(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, "Oregon", rec.Profile.State)
	assert.True(t, rec.Profile.GrossIncome.Equal(decimal.NewFromInt(90000)))
	assert.Equal(t, first.CreatedAt, rec.CreatedAt)

	all, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveProfile_RequiresName(t *testing.T) {
	err := newTestStore(t).SaveProfile(context.Background(), sampleRecord("  "))
	assert.ErrorIs(t, err, ErrProfileNameRequired)
}

func TestListProfiles_SortedByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	empty, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"zoe", "alex", "mia"} {
		require.NoError(t, store.SaveProfile(ctx, sampleRecord(name)))
	}

	all, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"alex", "mia", "zoe"}, []string{all[0].Name, all[1].Name, all[2].Name})
}

func TestDeleteProfile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProfile(ctx, sampleRecord("alex")))
	require.NoError(t, store.DeleteProfile(ctx, "alex"))

	rec, err := store.GetProfile(ctx, "alex")
	require.NoError(t, err)
	assert.Nil(t, rec)

	err = store.DeleteProfile(ctx, "alex")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.db")
	ctx := context.Background()

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveProfile(ctx, sampleRecord("alex")))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	rec, err := reopened.GetProfile(ctx, "alex")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Texas", rec.Profile.State)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := string(rune('a' + i))
			assert.NoError(t, store.SaveProfile(ctx, sampleRecord(name)))
			_, err := store.ListProfiles(ctx)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
