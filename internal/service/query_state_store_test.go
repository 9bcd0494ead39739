package service

import (
	"net/url"
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryStateStore_UpdateAndGet(t *testing.T) {
	store := NewQueryStateStore(nil)

	require.NoError(t, store.Update(entity.QueryKeyName, "ali"))
	assert.Equal(t, "ali", store.Get(entity.QueryKeyName))

	require.NoError(t, store.Update(entity.QueryKeyName, ""))
	assert.Empty(t, store.Get(entity.QueryKeyName))
	assert.Empty(t, store.Encode())
}

func TestQueryStateStore_KeysAreIndependent(t *testing.T) {
	store := NewQueryStateStore(url.Values{
		"name": {"ali"},
		"moc":  {entity.ModeInClinic},
	})

	require.NoError(t, store.Update(entity.QueryKeySort, "fees"))
	require.NoError(t, store.Update(entity.QueryKeyMode, ""))

	assert.Equal(t, "ali", store.Get(entity.QueryKeyName))
	assert.Equal(t, "fees", store.Get(entity.QueryKeySort))
	assert.Equal(t, "name=ali&sort=fees", store.Encode())
}

func TestQueryStateStore_UpdateList(t *testing.T) {
	store := NewQueryStateStore(nil)

	require.NoError(t, store.UpdateList(entity.QueryKeySpecialty, []string{"Dentist", "ENT"}))
	assert.Equal(t, "Dentist,ENT", store.Get(entity.QueryKeySpecialty))
	assert.Equal(t, []string{"Dentist", "ENT"}, store.State().Specialties)

	require.NoError(t, store.UpdateList(entity.QueryKeySpecialty, nil))
	assert.Empty(t, store.Get(entity.QueryKeySpecialty))
	assert.NotContains(t, store.Values(), entity.QueryKeySpecialty)
}

func TestQueryStateStore_Toggle(t *testing.T) {
	store := NewQueryStateStore(nil)

	require.NoError(t, store.Toggle(entity.QueryKeySpecialty, "ENT"))
	require.NoError(t, store.Toggle(entity.QueryKeySpecialty, "Dentist"))
	assert.Equal(t, []string{"ENT", "Dentist"}, store.List(entity.QueryKeySpecialty))

	require.NoError(t, store.Toggle(entity.QueryKeySpecialty, "ENT"))
	assert.Equal(t, "Dentist", store.Get(entity.QueryKeySpecialty))

	require.NoError(t, store.Toggle(entity.QueryKeySpecialty, "Dentist"))
	assert.Empty(t, store.Encode())
}

func TestQueryStateStore_UnknownKey(t *testing.T) {
	store := NewQueryStateStore(nil)

	err := store.Update("page", "2")
	assert.ErrorIs(t, err, ErrUnknownQueryKey)
	assert.Empty(t, store.Encode())
}

func TestQueryStateStore_NormalizesInput(t *testing.T) {
	store := NewQueryStateStore(url.Values{
		"sort":      {"rating"},
		"specialty": {",ENT,,ENT,"},
		"name":      {""},
		"page":      {"3"},
	})

	assert.Equal(t, "specialty=ENT", store.Encode())
	assert.Equal(t, entity.SortNone, store.State().Sort)

	require.NoError(t, store.Update(entity.QueryKeySort, "experience"))
	require.NoError(t, store.Update(entity.QueryKeySort, "bogus"))
	assert.Empty(t, store.Get(entity.QueryKeySort))
}

func TestQueryStateStore_OnChange(t *testing.T) {
	store := NewQueryStateStore(nil)

	var seen []entity.QueryState
	store.OnChange(func(state entity.QueryState) {
		seen = append(seen, state)
	})

	require.NoError(t, store.Update(entity.QueryKeySort, "fees"))
	require.NoError(t, store.Update(entity.QueryKeySort, "fees"))
	require.NoError(t, store.Update(entity.QueryKeyName, ""))
	require.NoError(t, store.Toggle(entity.QueryKeySpecialty, "ENT"))

	require.Len(t, seen, 2)
	assert.Equal(t, entity.QueryState{Sort: entity.SortByFees}, seen[0])
	assert.Equal(t, entity.QueryState{Sort: entity.SortByFees, Specialties: []string{"ENT"}}, seen[1])
}

func TestParseQueryStateStore(t *testing.T) {
	store, err := ParseQueryStateStore("?moc=Video+Consult&specialty=ENT%2CDentist")
	require.NoError(t, err)

	assert.Equal(t, entity.QueryState{
		Mode:        entity.ModeVideoConsult,
		Specialties: []string{"ENT", "Dentist"},
	}, store.State())

	_, err = ParseQueryStateStore("name=%zz")
	assert.Error(t, err)
}
