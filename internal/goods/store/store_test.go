package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pcs/internal/goods"
	"github.com/MrJamesThe3rd/pcs/internal/goods/store"
)

func TestMemory_SetPurpose(t *testing.T) {
	ctx := context.Background()
	s := store.New(goods.Seed())

	before, err := s.List(ctx)
	require.NoError(t, err)

	updated, err := s.SetPurpose(ctx, "3", goods.PurposeROB)
	require.NoError(t, err)
	assert.True(t, updated)

	after, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))

	for i := range before {
		want := *before[i]
		if want.ID == "3" {
			want.Purpose = goods.PurposeROB
		}

		assert.Equal(t, want, *after[i])
	}

	counts := goods.PurposeCounts(after)
	got := map[goods.Purpose]int{}
	for _, c := range counts {
		got[c.Purpose] = c.Count
	}

	assert.Equal(t, map[goods.Purpose]int{
		goods.PurposeImport:        1,
		goods.PurposeTransit:       1,
		goods.PurposeTransshipment: 0,
		goods.PurposeROB:           2,
	}, got)
}

func TestMemory_SetPurpose_UnknownID(t *testing.T) {
	ctx := context.Background()
	s := store.New(goods.Seed())

	updated, err := s.SetPurpose(ctx, "999", goods.PurposeImport)
	require.NoError(t, err)
	assert.False(t, updated)

	after, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, goods.Seed(), after)
}

func TestMemory_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := store.New(goods.Seed())

	first, err := s.List(ctx)
	require.NoError(t, err)

	first[0].Purpose = goods.PurposeROB
	first[0].Commodity = "changed"

	second, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, goods.PurposeImport, second[0].Purpose)
	assert.Equal(t, "Linh kiện điện tử", second[0].Commodity)
}

func TestMemory_SeedIsCopied(t *testing.T) {
	seed := goods.Seed()
	s := store.New(seed)

	seed[0].Purpose = goods.PurposeTransit

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, goods.PurposeImport, got[0].Purpose)
}
