package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dav1dde/pasteofexile-sub000/internal/config"
	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
)

func TestStore_DefaultTitle(t *testing.T) {
	database := openTestDB(t)

	out, err := Store(context.Background(), database, config.DefaultConfig(), StoreInput{Code: fixtureCode(t, "modern.xml")})
	require.NoError(t, err)

	assert.Len(t, out.ID, 26, "ULID")
	assert.Equal(t, "Level 95 MoM Summon Skeletons Necromancer", out.Title)
}

func TestStore_ExplicitTitleAndMetadata(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	code := fixtureCode(t, "modern.xml")

	out, err := Store(ctx, database, config.DefaultConfig(), StoreInput{Code: "  " + code + "\n", Title: " Skelly   league start "})
	require.NoError(t, err)
	assert.Equal(t, "Skelly league start", out.Title)

	got, err := Fetch(ctx, database, FetchInput{ID: out.ID})
	require.NoError(t, err)
	assert.Equal(t, code, got.Code, "code is stored trimmed")
	assert.Equal(t, 95, got.Level)
	assert.Equal(t, "Witch", got.ClassName)
	require.NotNil(t, got.Ascendancy)
	assert.Equal(t, "Necromancer", *got.Ascendancy)
	require.NotNil(t, got.MainSkill)
	assert.Equal(t, "Summon Skeletons", *got.MainSkill)
}

func TestStore_RejectsBadCodes(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)

	_, err := Store(ctx, database, config.DefaultConfig(), StoreInput{})
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest), "got %v", err)

	_, err = Store(ctx, database, config.DefaultConfig(), StoreInput{Code: "%%%"})
	assert.True(t, errors.IsBadBuildCode(err), "got %v", err)

	_, err = Store(ctx, database, &config.Config{MaxBuildBytes: 8}, StoreInput{Code: fixtureCode(t, "legacy.xml")})
	assert.True(t, errors.Is(err, errors.ErrBuildTooLarge), "got %v", err)

	list, err := List(ctx, database, ListInput{})
	require.NoError(t, err)
	assert.Empty(t, list.Items, "nothing is stored for rejected codes")
}
