package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/service"
)

const noRecipes = "No recipes found"

type AccountRequest struct {
	AccountID int64 `json:"account_id" binding:"required"`
}

// RecipeRequest is the body of /recipe/add. It is embedded in EditRequest.
// Older clients send ingredients under "material"; "ingredient" wins when
// both are present.
type RecipeRequest struct {
	AccountID   int64               `json:"accountId" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Image       string              `json:"image"`
	Time        string              `json:"time"`
	Description string              `json:"description"`
	Ingredients []model.Ingredient  `json:"ingredient" binding:"required_without=Material"`
	Material    []model.Ingredient  `json:"material"`
	Labels      []model.Label       `json:"label" binding:"required"`
	Process     []model.ProcessStep `json:"process" binding:"required"`
	Public      *bool               `json:"public_private" binding:"required"`
}

type EditRequest struct {
	RecipeRequest
	RecipeID int64 `json:"recipeId" binding:"required"`
	SetID    int64 `json:"setId"`
}

type DeleteRequest struct {
	RecipeID int64 `json:"recipe_id" binding:"required"`
}

type SearchRequest struct {
	AccountID int64  `json:"account_id" binding:"required"`
	Option    string `json:"option" binding:"required"`
	Keyword   string `json:"keyword" binding:"required"`
}

func (r RecipeRequest) input() service.RecipeInput {
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = r.Material
	}
	return service.RecipeInput{
		AccountID:   r.AccountID,
		Title:       r.Title,
		Image:       r.Image,
		Time:        r.Time,
		Description: r.Description,
		Ingredients: ingredients,
		Labels:      r.Labels,
		Process:     r.Process,
		Public:      r.Public != nil && *r.Public,
	}
}

type RecipeHandler struct {
	recipes service.IRecipeService
	log     *zap.Logger
}

func NewRecipeHandler(recipes service.IRecipeService, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, log: log}
}

func (h *RecipeHandler) RegisterRoutes(router gin.IRouter) {
	recipes := router.Group("/recipe")
	{
		recipes.POST("/mylist", h.ListMine)
		recipes.POST("/mylist/search", h.Search)
		recipes.GET("/public", h.ListPublic)
		recipes.POST("/add", h.Add)
		recipes.POST("/add/image", h.AddImage)
		recipes.POST("/edit", h.Edit)
		recipes.DELETE("/single", h.Delete)
	}
}

func (h *RecipeHandler) ListMine(c *gin.Context) {
	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Account ID is required")
		return
	}

	recipes, err := h.recipes.ListMine(c.Request.Context(), req.AccountID)
	if err != nil {
		respondError(c, h.log, err, noRecipes)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Success!", "recipe": recipes})
}

func (h *RecipeHandler) ListPublic(c *gin.Context) {
	recipes, err := h.recipes.ListPublic(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, noRecipes)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Success!", "recipe": recipes})
}

func (h *RecipeHandler) Add(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Account ID, title, ingredient, label, process and public_private are required")
		return
	}

	recipe, err := h.recipes.Add(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, h.log, err, noRecipes)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Success!", "recipe": recipe})
}

func (h *RecipeHandler) Edit(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Account ID and recipe ID are required")
		return
	}

	recipe, err := h.recipes.Edit(c.Request.Context(), service.EditInput{
		RecipeInput: req.input(),
		RecipeID:    req.RecipeID,
		SetID:       req.SetID,
	})
	if err != nil {
		respondError(c, h.log, err, "Recipe not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Success!", "recipe": recipe})
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Recipe ID is required")
		return
	}

	deleted, err := h.recipes.Delete(c.Request.Context(), req.RecipeID)
	if err != nil {
		respondError(c, h.log, err, "Recipe not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Success!", "data": deleted})
}

func (h *RecipeHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Account ID, option and keyword are required")
		return
	}

	recipes, err := h.recipes.Search(c.Request.Context(), req.AccountID, req.Keyword, service.SearchOption(req.Option))
	if err != nil {
		respondError(c, h.log, err, noRecipes)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Success!", "recipe": recipes})
}
