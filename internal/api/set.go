package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/service"
)

type SetAccountRequest struct {
	AccountID int64 `json:"accountId" binding:"required"`
}

type CreateSetRequest struct {
	AccountID   int64  `json:"accountId" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AddToSetRequest struct {
	AccountID int64   `json:"accountId" binding:"required"`
	SetID     int64   `json:"setId" binding:"required"`
	RecipeIDs []int64 `json:"recipeIds" binding:"required,min=1"`
}

type SetRecipesRequest struct {
	SetID int64 `json:"set_id" binding:"required"`
}

// SetHandler serves the /set routes.
type SetHandler struct {
	sets service.ISetService
	log  *zap.Logger
}

func NewSetHandler(sets service.ISetService, log *zap.Logger) *SetHandler {
	return &SetHandler{sets: sets, log: log}
}

func (h *SetHandler) RegisterRoutes(router gin.IRouter) {
	sets := router.Group("/set")
	{
		sets.POST("/all", h.ListSets)
		sets.POST("/create", h.CreateSet)
		sets.POST("/add", h.AddRecipes)
		sets.POST("/recipe_list", h.ListSetRecipes)
	}
}

func (h *SetHandler) ListSets(c *gin.Context) {
	var req SetAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Account ID is required")
		return
	}

	sets, err := h.sets.ListSets(c.Request.Context(), req.AccountID)
	if err != nil {
		respondError(c, h.log, err, "No sets found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Success!", "set": sets})
}

func (h *SetHandler) CreateSet(c *gin.Context) {
	var req CreateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Account ID is required")
		return
	}

	set, err := h.sets.CreateSet(c.Request.Context(), req.AccountID, req.Title, req.Description)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Success!", "recipe": set})
}

func (h *SetHandler) AddRecipes(c *gin.Context) {
	var req AddToSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Account ID, set ID and recipe IDs are required")
		return
	}

	links, err := h.sets.AddRecipes(c.Request.Context(), req.AccountID, req.SetID, req.RecipeIDs)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Success!", "links": links})
}

func (h *SetHandler) ListSetRecipes(c *gin.Context) {
	var req SetRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.log, err, "Set ID is required")
		return
	}

	recipes, err := h.sets.ListSetRecipes(c.Request.Context(), req.SetID)
	if err != nil {
		respondError(c, h.log, err, noRecipes)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Success!", "recipeList": recipes})
}
