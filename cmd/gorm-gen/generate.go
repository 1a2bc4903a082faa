// Generate typed query code for the agency models into dao/query.
// Run from this directory: go run generate.go
package main

import (
	"gorm.io/gen"

	"github.com/raids-lab/agencyos/dao/model"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "../../dao/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	// Tables queried by query.Store. Saved views and cron tables go through the
	// generic helpers.
	g.ApplyBasic(
		model.Space{},
		model.Folder{},
		model.Project{},
		model.Task{},
		model.TimeEntry{},
		model.Profile{},
	)

	// Execute the code generation
	g.Execute()
}
