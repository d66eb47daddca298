package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/recipebox/backend/internal/model"
)

// Tables lists every model owned by the service, parents first.
var Tables = []interface{}{
	&model.Account{},
	&model.Recipe{},
	&model.Ingredient{},
	&model.Label{},
	&model.ProcessStep{},
	&model.RecipeSet{},
	&model.SetLink{},
}

// Migrate creates missing tables and columns. It is meant for local and
// test databases; the hosted store already carries the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Tables...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
