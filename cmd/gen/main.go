// Command gen regenerates the type-safe query builders in
// internal/infra/persistence/postgres/query from the persistence models.
package main

import (
	"contacts/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.PersonModel{},
		model.CountryModel{},
		model.UserModel{},
		model.RoleModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.ActivityModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(models...)

	g.Execute()
}
