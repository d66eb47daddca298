package model

import "time"

// RecipeSet is a named, account-owned collection of recipes.
type RecipeSet struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	AccountID   int64     `gorm:"not null;index" json:"account_id"`
	Name        string    `gorm:"size:255" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"autoCreateTime" json:"date"`
}

func (RecipeSet) TableName() string {
	return "recipe_set"
}

// SetLink joins a recipe to a set. Links are only ever added.
type SetLink struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	RecipeID  int64 `gorm:"not null;index" json:"recipe_id"`
	SetID     int64 `gorm:"not null;index" json:"set_id"`
	AccountID int64 `gorm:"not null" json:"account_id"`
}

func (SetLink) TableName() string {
	return "single_set_links"
}
