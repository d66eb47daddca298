package model

import (
	"encoding/json"
	"time"
)

// Recipe is a row of the recipe table with its eager-loaded children.
type Recipe struct {
	ID          int64         `gorm:"primaryKey" json:"id"`
	AccountID   int64         `gorm:"not null;index" json:"account_id"`
	Name        string        `gorm:"size:255" json:"name"`
	Image       string        `gorm:"type:text" json:"image"`
	Description string        `gorm:"type:text" json:"description"`
	Time        string        `gorm:"size:64" json:"time"`
	Public      bool          `gorm:"not null" json:"public"`
	Date        time.Time     `gorm:"autoCreateTime;index" json:"date"`
	Ingredients []Ingredient  `gorm:"foreignKey:RecipeID" json:"ingredient"`
	Labels      []Label       `gorm:"foreignKey:RecipeID" json:"label"`
	Process     []ProcessStep `gorm:"foreignKey:RecipeID" json:"process"`
}

func (Recipe) TableName() string {
	return "recipe"
}

// Ingredient lives in the material table.
type Ingredient struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	RecipeID int64  `gorm:"not null;index" json:"recipe_id"`
	Name     string `gorm:"size:255" json:"name"`
	Quantity string `gorm:"size:64" json:"quantity"`
}

func (Ingredient) TableName() string {
	return "material"
}

// Label is a free-form tag on a recipe.
type Label struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	RecipeID int64  `gorm:"not null;index" json:"recipe_id"`
	Name     string `gorm:"size:255" json:"name"`
}

func (Label) TableName() string {
	return "label"
}

// UnmarshalJSON accepts both {"name": "Quick"} and a bare "Quick".
func (l *Label) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*l = Label{Name: name}
		return nil
	}
	type plain Label
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = Label(p)
	return nil
}

// ProcessStep is one numbered instruction of a recipe.
type ProcessStep struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	RecipeID int64  `gorm:"not null;index" json:"recipe_id"`
	Step     int    `json:"step"`
	Name     string `gorm:"type:text" json:"name"`
}

func (ProcessStep) TableName() string {
	return "process"
}
