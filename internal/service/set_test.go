package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebox/backend/internal/errs"
	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/testhelpers"
)

func TestCreateSetDefaults(t *testing.T) {
	svc := service.NewSetService(testhelpers.SetupSQLite(t))
	ctx := context.Background()

	set, err := svc.CreateSet(ctx, 4, "", "")
	require.NoError(t, err)
	assert.NotZero(t, set.ID)
	assert.Equal(t, "No title", set.Name)
	assert.Equal(t, "No description", set.Description)

	set, err = svc.CreateSet(ctx, 4, "Weeknight", "Fast dinners")
	require.NoError(t, err)
	assert.Equal(t, "Weeknight", set.Name)
	assert.Equal(t, "Fast dinners", set.Description)

	_, err = svc.CreateSet(ctx, 0, "x", "y")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestListSets(t *testing.T) {
	svc := service.NewSetService(testhelpers.SetupSQLite(t))
	ctx := context.Background()

	_, err := svc.ListSets(ctx, 4)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	for _, title := range []string{"Old", "New"} {
		_, err := svc.CreateSet(ctx, 4, title, "")
		require.NoError(t, err)
	}
	_, err = svc.CreateSet(ctx, 5, "Not mine", "")
	require.NoError(t, err)

	sets, err := svc.ListSets(ctx, 4)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "New", sets[0].Name)
	assert.Equal(t, "Old", sets[1].Name)
}

func TestAddRecipesCreatesEveryLink(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewSetService(db)

	links, err := svc.AddRecipes(context.Background(), 4, 9, []int64{11, 12, 13})
	require.NoError(t, err)
	require.Len(t, links, 3)
	for _, l := range links {
		assert.NotZero(t, l.ID)
		assert.Equal(t, int64(9), l.SetID)
		assert.Equal(t, int64(4), l.AccountID)
	}

	var count int64
	require.NoError(t, db.Model(&model.SetLink{}).Where("set_id = ?", 9).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestAddRecipesValidation(t *testing.T) {
	svc := service.NewSetService(testhelpers.SetupSQLite(t))

	_, err := svc.AddRecipes(context.Background(), 4, 9, nil)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestListSetRecipesKeepsLinkOrder(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	recipes := service.NewRecipeService(db, nil)
	sets := service.NewSetService(db)
	ctx := context.Background()

	var ids []int64
	for _, in := range []service.RecipeInput{soup(4), {AccountID: 4, Title: "Salad"}, {AccountID: 4, Title: "Stew"}} {
		r, err := recipes.Add(ctx, in)
		require.NoError(t, err)
		ids = append(ids, r.ID)
	}

	set, err := sets.CreateSet(ctx, 4, "Mix", "")
	require.NoError(t, err)
	_, err = sets.AddRecipes(ctx, 4, set.ID, []int64{ids[2], ids[0], ids[1]})
	require.NoError(t, err)

	got, err := sets.ListSetRecipes(ctx, set.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Stew", got[0].Name)
	assert.Equal(t, "Soup", got[1].Name)
	assert.Equal(t, "Salad", got[2].Name)
	assert.Len(t, got[1].Ingredients, 1)
}

func TestListSetRecipesErrors(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	sets := service.NewSetService(db)
	ctx := context.Background()

	_, err := sets.ListSetRecipes(ctx, 1)
	assert.ErrorIs(t, err, errs.ErrNotFound, "empty set")

	_, err = sets.AddRecipes(ctx, 4, 1, []int64{777})
	require.NoError(t, err)
	_, err = sets.ListSetRecipes(ctx, 1)
	assert.ErrorIs(t, err, errs.ErrNotFound, "dangling link")

	_, err = sets.ListSetRecipes(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}
