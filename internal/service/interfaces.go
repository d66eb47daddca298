package service

import (
	"context"
	"io"

	"github.com/pageza/recipebox/backend/internal/model"
)

// IAccountService defines signup and login.
type IAccountService interface {
	Signup(ctx context.Context, username, email, password string) (*model.Account, error)
	Login(ctx context.Context, email, password string) (*model.Account, error)
}

// IRecipeService defines recipe CRUD, search and image upload.
type IRecipeService interface {
	ListMine(ctx context.Context, accountID int64) ([]model.Recipe, error)
	ListPublic(ctx context.Context) ([]model.Recipe, error)
	Get(ctx context.Context, id int64) (*model.Recipe, error)
	Add(ctx context.Context, in RecipeInput) (*model.Recipe, error)
	Edit(ctx context.Context, in EditInput) (*model.Recipe, error)
	Delete(ctx context.Context, id int64) ([]model.Recipe, error)
	Search(ctx context.Context, accountID int64, keyword string, option SearchOption) ([]model.Recipe, error)
	AddImage(ctx context.Context, data []byte, originalName, contentType string) (string, error)
}

// ISetService defines recipe set operations.
type ISetService interface {
	ListSets(ctx context.Context, accountID int64) ([]model.RecipeSet, error)
	CreateSet(ctx context.Context, accountID int64, title, description string) (*model.RecipeSet, error)
	AddRecipes(ctx context.Context, accountID, setID int64, recipeIDs []int64) ([]model.SetLink, error)
	ListSetRecipes(ctx context.Context, setID int64) ([]model.Recipe, error)
}

// ImageStore persists an uploaded file and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error)
}
