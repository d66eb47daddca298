package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipebox/backend/internal/errs"
	"github.com/pageza/recipebox/backend/internal/model"
)

// SearchOption selects which column a keyword search filters on.
type SearchOption string

const (
	SearchByTitle       SearchOption = "title"
	SearchByLabel       SearchOption = "label"
	SearchByIngredients SearchOption = "ingredients"
)

// RecipeInput carries the mutable fields of a recipe and its full child lists.
type RecipeInput struct {
	AccountID   int64
	Title       string
	Image       string
	Time        string
	Description string
	Ingredients []model.Ingredient
	Labels      []model.Label
	Process     []model.ProcessStep
	Public      bool
}

// EditInput replaces a recipe. SetID <= 0 means "no set".
type EditInput struct {
	RecipeInput
	RecipeID int64
	SetID    int64
}

// newestFirst orders recipes by creation date, ties broken by id.
var newestFirst = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "date"}, Desc: true},
	{Column: clause.Column{Name: "id"}, Desc: true},
}}

// RecipeService handles recipe operations
type RecipeService struct {
	db     *gorm.DB
	images ImageStore
}

// NewRecipeService creates a new RecipeService. images may be nil, in which
// case AddImage fails.
func NewRecipeService(db *gorm.DB, images ImageStore) *RecipeService {
	return &RecipeService{
		db:     db,
		images: images,
	}
}

// withChildren eager-loads every child list in insertion order.
func withChildren(db *gorm.DB) *gorm.DB {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id") }
	return db.
		Preload("Ingredients", byID).
		Preload("Labels", byID).
		Preload("Process", byID)
}

// ListMine lists an account's recipes, newest first.
func (s *RecipeService) ListMine(ctx context.Context, accountID int64) ([]model.Recipe, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("%w: account id is required", errs.ErrInvalidInput)
	}
	var recipes []model.Recipe
	err := withChildren(s.db.WithContext(ctx)).
		Where("account_id = ?", accountID).
		Clauses(newestFirst).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	if len(recipes) == 0 {
		return nil, errs.ErrNotFound
	}
	return recipes, nil
}

// ListPublic lists every public recipe regardless of owner, newest first.
func (s *RecipeService) ListPublic(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := withChildren(s.db.WithContext(ctx)).
		Where("public = ?", true).
		Clauses(newestFirst).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("list public recipes: %w", err)
	}
	if len(recipes) == 0 {
		return nil, errs.ErrNotFound
	}
	return recipes, nil
}

// Get retrieves a recipe by ID
func (s *RecipeService) Get(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := withChildren(s.db.WithContext(ctx)).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("get recipe %d: %w", id, err)
	}
	return &recipe, nil
}

// Add inserts the recipe, then its ingredients, labels and process steps.
// All rows are written in one transaction.
func (s *RecipeService) Add(ctx context.Context, in RecipeInput) (*model.Recipe, error) {
	if in.AccountID == 0 {
		return nil, fmt.Errorf("%w: account id is required", errs.ErrInvalidInput)
	}

	recipe := &model.Recipe{
		AccountID:   in.AccountID,
		Name:        in.Title,
		Image:       in.Image,
		Description: in.Description,
		Time:        in.Time,
		Public:      in.Public,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return fmt.Errorf("insert recipe: %w", err)
		}
		children, err := insertChildren(tx, recipe.ID, in)
		if err != nil {
			return err
		}
		recipe.Ingredients = children.Ingredients
		recipe.Labels = children.Labels
		recipe.Process = children.Process
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// Edit links the recipe to a set when asked, overwrites its fields and
// replaces every child list with the one supplied.
func (s *RecipeService) Edit(ctx context.Context, in EditInput) (*model.Recipe, error) {
	if in.AccountID == 0 || in.RecipeID == 0 {
		return nil, fmt.Errorf("%w: account id and recipe id are required", errs.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.SetID > 0 {
			link := model.SetLink{RecipeID: in.RecipeID, SetID: in.SetID, AccountID: in.AccountID}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("insert set link: %w", err)
			}
		}

		if in.Image != "" {
			if err := tx.Model(&model.Recipe{}).Where("id = ?", in.RecipeID).Update("image", in.Image).Error; err != nil {
				return fmt.Errorf("update image: %w", err)
			}
		}

		res := tx.Model(&model.Recipe{}).Where("id = ?", in.RecipeID).Updates(map[string]interface{}{
			"public":      in.Public,
			"account_id":  in.AccountID,
			"name":        in.Title,
			"description": in.Description,
			"time":        in.Time,
		})
		if res.Error != nil {
			return fmt.Errorf("update recipe: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: recipe %d", errs.ErrNotFound, in.RecipeID)
		}

		return replaceChildren(tx, in.RecipeID, in.RecipeInput)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, in.RecipeID)
}

// Delete removes a recipe together with its children and set links and
// returns the deleted recipe rows.
func (s *RecipeService) Delete(ctx context.Context, id int64) ([]model.Recipe, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: recipe id is required", errs.ErrInvalidInput)
	}

	var deleted []model.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Find(&deleted).Error; err != nil {
			return fmt.Errorf("load recipe: %w", err)
		}
		for _, child := range []interface{}{&model.Ingredient{}, &model.Label{}, &model.ProcessStep{}, &model.SetLink{}} {
			if err := tx.Where("recipe_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("delete %T: %w", child, err)
			}
		}
		if err := tx.Where("id = ?", id).Delete(&model.Recipe{}).Error; err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// Search filters an account's recipes by case-insensitive substring on the
// recipe name, a label name or an ingredient name. Label and ingredient
// searches only return recipes with at least one matching child.
func (s *RecipeService) Search(ctx context.Context, accountID int64, keyword string, option SearchOption) ([]model.Recipe, error) {
	if accountID == 0 || keyword == "" {
		return nil, fmt.Errorf("%w: account id and keyword are required", errs.ErrInvalidInput)
	}

	like := "%" + strings.ToLower(keyword) + "%"
	query := withChildren(s.db.WithContext(ctx)).Where("account_id = ?", accountID)

	switch option {
	case SearchByTitle:
		query = query.Where("LOWER(name) LIKE ?", like)
	case SearchByLabel:
		query = query.Where("id IN (?)", s.db.Model(&model.Label{}).Select("recipe_id").Where("LOWER(name) LIKE ?", like))
	case SearchByIngredients:
		query = query.Where("id IN (?)", s.db.Model(&model.Ingredient{}).Select("recipe_id").Where("LOWER(name) LIKE ?", like))
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownOption, option)
	}

	var recipes []model.Recipe
	if err := query.Clauses(newestFirst).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}
	if len(recipes) == 0 {
		return nil, errs.ErrNotFound
	}
	return recipes, nil
}

// replaceChildren deletes all ingredients, labels and process steps of the
// recipe, then inserts the new lists. Kinds are handled in that order.
func replaceChildren(tx *gorm.DB, recipeID int64, in RecipeInput) error {
	for _, child := range []interface{}{&model.Ingredient{}, &model.Label{}, &model.ProcessStep{}} {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(child).Error; err != nil {
			return fmt.Errorf("delete %T: %w", child, err)
		}
	}
	_, err := insertChildren(tx, recipeID, in)
	return err
}

// insertChildren writes fresh child rows for recipeID. Client supplied ids
// are discarded.
func insertChildren(tx *gorm.DB, recipeID int64, in RecipeInput) (RecipeInput, error) {
	out := RecipeInput{
		Ingredients: make([]model.Ingredient, 0, len(in.Ingredients)),
		Labels:      make([]model.Label, 0, len(in.Labels)),
		Process:     make([]model.ProcessStep, 0, len(in.Process)),
	}

	for _, ing := range in.Ingredients {
		out.Ingredients = append(out.Ingredients, model.Ingredient{RecipeID: recipeID, Name: ing.Name, Quantity: ing.Quantity})
	}
	for _, l := range in.Labels {
		out.Labels = append(out.Labels, model.Label{RecipeID: recipeID, Name: l.Name})
	}
	for _, p := range in.Process {
		out.Process = append(out.Process, model.ProcessStep{RecipeID: recipeID, Step: p.Step, Name: p.Name})
	}

	if len(out.Ingredients) > 0 {
		if err := tx.Create(&out.Ingredients).Error; err != nil {
			return out, fmt.Errorf("insert ingredients: %w", err)
		}
	}
	if len(out.Labels) > 0 {
		if err := tx.Create(&out.Labels).Error; err != nil {
			return out, fmt.Errorf("insert labels: %w", err)
		}
	}
	if len(out.Process) > 0 {
		if err := tx.Create(&out.Process).Error; err != nil {
			return out, fmt.Errorf("insert process steps: %w", err)
		}
	}
	return out, nil
}
