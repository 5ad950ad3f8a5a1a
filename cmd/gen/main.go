package main

import (
	"dealfinder/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Regenerates internal/infra/persistence/postgres/query whenever a model changes.
func main() {
	models := []any{
		model.UserModel{},
		model.BusinessModel{},
		model.PromotionModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(models...)

	g.Execute()
}
