package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/recipebox/backend/internal/errs"
	"github.com/pageza/recipebox/backend/internal/model"
)

const (
	defaultSetTitle       = "No title"
	defaultSetDescription = "No description"
)

// SetService manages recipe sets and their links.
type SetService struct {
	db *gorm.DB
}

func NewSetService(db *gorm.DB) *SetService {
	return &SetService{db: db}
}

// ListSets lists an account's sets, newest first.
func (s *SetService) ListSets(ctx context.Context, accountID int64) ([]model.RecipeSet, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("%w: account id is required", errs.ErrInvalidInput)
	}
	var sets []model.RecipeSet
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Clauses(newestFirst).
		Find(&sets).Error
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	if len(sets) == 0 {
		return nil, errs.ErrNotFound
	}
	return sets, nil
}

// CreateSet inserts a set, filling in placeholder title and description.
func (s *SetService) CreateSet(ctx context.Context, accountID int64, title, description string) (*model.RecipeSet, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("%w: account id is required", errs.ErrInvalidInput)
	}
	if title == "" {
		title = defaultSetTitle
	}
	if description == "" {
		description = defaultSetDescription
	}

	set := &model.RecipeSet{AccountID: accountID, Name: title, Description: description}
	if err := s.db.WithContext(ctx).Create(set).Error; err != nil {
		return nil, fmt.Errorf("insert set: %w", err)
	}
	return set, nil
}

// AddRecipes links every recipe id to the set. Either all links are
// written or none are.
func (s *SetService) AddRecipes(ctx context.Context, accountID, setID int64, recipeIDs []int64) ([]model.SetLink, error) {
	if accountID == 0 || setID == 0 || len(recipeIDs) == 0 {
		return nil, fmt.Errorf("%w: account id, set id and recipe ids are required", errs.ErrInvalidInput)
	}

	links := make([]model.SetLink, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		links = append(links, model.SetLink{RecipeID: id, SetID: setID, AccountID: accountID})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&links).Error
	})
	if err != nil {
		return nil, fmt.Errorf("insert set links: %w", err)
	}
	return links, nil
}

// ListSetRecipes returns the recipes linked to a set in link order, children
// included. Recipes are fetched with a single query.
func (s *SetService) ListSetRecipes(ctx context.Context, setID int64) ([]model.Recipe, error) {
	if setID == 0 {
		return nil, fmt.Errorf("%w: set id is required", errs.ErrInvalidInput)
	}

	db := s.db.WithContext(ctx)

	var links []model.SetLink
	if err := db.Where("set_id = ?", setID).Order("id").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("list set links: %w", err)
	}
	if len(links) == 0 {
		return nil, errs.ErrNotFound
	}

	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.RecipeID)
	}

	var found []model.Recipe
	if err := withChildren(db).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("load set recipes: %w", err)
	}
	byID := make(map[int64]model.Recipe, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}

	recipes := make([]model.Recipe, 0, len(links))
	for _, l := range links {
		r, ok := byID[l.RecipeID]
		if !ok {
			return nil, fmt.Errorf("%w: recipe %d in set %d", errs.ErrNotFound, l.RecipeID, setID)
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}
