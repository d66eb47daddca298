package testhelpers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/service"
)

// MockImageStore is a mock implementation of service.ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, name, contentType, body)
	return args.String(0), args.Error(1)
}

// MockAccountService is a mock implementation of service.IAccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Signup(ctx context.Context, username, email, password string) (*model.Account, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*model.Account, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

// MockRecipeService is a mock implementation of service.IRecipeService
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) ListMine(ctx context.Context, accountID int64) ([]model.Recipe, error) {
	args := m.Called(ctx, accountID)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) ListPublic(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) Get(ctx context.Context, id int64) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	return recipe(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) Add(ctx context.Context, in service.RecipeInput) (*model.Recipe, error) {
	args := m.Called(ctx, in)
	return recipe(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) Edit(ctx context.Context, in service.EditInput) (*model.Recipe, error) {
	args := m.Called(ctx, in)
	return recipe(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, id int64) ([]model.Recipe, error) {
	args := m.Called(ctx, id)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) Search(ctx context.Context, accountID int64, keyword string, option service.SearchOption) ([]model.Recipe, error) {
	args := m.Called(ctx, accountID, keyword, option)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) AddImage(ctx context.Context, data []byte, originalName, contentType string) (string, error) {
	args := m.Called(ctx, data, originalName, contentType)
	return args.String(0), args.Error(1)
}

// MockSetService is a mock implementation of service.ISetService
type MockSetService struct {
	mock.Mock
}

func (m *MockSetService) ListSets(ctx context.Context, accountID int64) ([]model.RecipeSet, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RecipeSet), args.Error(1)
}

func (m *MockSetService) CreateSet(ctx context.Context, accountID int64, title, description string) (*model.RecipeSet, error) {
	args := m.Called(ctx, accountID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecipeSet), args.Error(1)
}

func (m *MockSetService) AddRecipes(ctx context.Context, accountID, setID int64, recipeIDs []int64) ([]model.SetLink, error) {
	args := m.Called(ctx, accountID, setID, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SetLink), args.Error(1)
}

func (m *MockSetService) ListSetRecipes(ctx context.Context, setID int64) ([]model.Recipe, error) {
	args := m.Called(ctx, setID)
	return recipes(args.Get(0)), args.Error(1)
}

func recipe(v interface{}) *model.Recipe {
	if v == nil {
		return nil
	}
	return v.(*model.Recipe)
}

func recipes(v interface{}) []model.Recipe {
	if v == nil {
		return nil
	}
	return v.([]model.Recipe)
}
