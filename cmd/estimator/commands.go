package main

import (
	"fmt"

	"material_estimator/internal/adapter/persistence/repository"
	"material_estimator/internal/config"
	"material_estimator/internal/domain/catalog"
	"material_estimator/internal/infrastructure/database"
	"material_estimator/internal/usecase"

	"github.com/urfave/cli/v2"
)

func baseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{Name: "budget", Aliases: []string{"b"}, Usage: "Available budget (PHP)", Required: true},
		&cli.Float64Flag{Name: "size", Aliases: []string{"s"}, Usage: "Floor area in square meters", Required: true},
		&cli.StringFlag{Name: "style", Value: "Modern", Usage: "Design style (Modern, Classic, Rustic)"},
		&cli.BoolFlag{Name: "json", Usage: "Print JSON instead of a table"},
	}
}

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Estimate materials for a floor area and design style",
		Flags: baseFlags(),
		Action: func(c *cli.Context) error {
			uc, engine, err := newEstimateUseCase(c)
			if err != nil {
				return err
			}
			est, err := uc.EstimateMaterials(c.Context, c.Float64("budget"), c.Float64("size"), c.String("style"))
			if err != nil {
				return err
			}
			return printEstimate(c.App.Writer, engine.Catalog(), est, c.Bool("json"))
		},
	}
}

func componentsCommand() *cli.Command {
	flags := append(baseFlags(),
		&cli.StringSliceFlag{Name: "add", Usage: "Component added to the model, as name=count (repeatable)"},
		&cli.StringSliceFlag{Name: "remove", Usage: "Component removed from the model, as name=count (repeatable)"},
	)
	return &cli.Command{
		Name:  "components",
		Usage: "Estimate, then rescale by structural components added or removed",
		Flags: flags,
		Action: func(c *cli.Context) error {
			components, err := parseComponents(c.StringSlice("add"), c.StringSlice("remove"))
			if err != nil {
				return err
			}
			uc, engine, err := newEstimateUseCase(c)
			if err != nil {
				return err
			}
			est, err := uc.EstimateFromComponents(c.Context, c.Float64("budget"), c.Float64("size"), c.String("style"), components)
			if err != nil {
				return err
			}
			return printEstimate(c.App.Writer, engine.Catalog(), est, c.Bool("json"))
		},
	}
}

func modelChangesCommand() *cli.Command {
	flags := append(baseFlags(),
		&cli.StringSliceFlag{Name: "added", Usage: "Model parts added for a material, as Material=count (repeatable)"},
		&cli.StringSliceFlag{Name: "removed", Usage: "Model parts removed for a material, as Material=count (repeatable)"},
	)
	return &cli.Command{
		Name:  "model-changes",
		Usage: "Estimate, then rescale materials by 3D model parts added or removed",
		Flags: flags,
		Action: func(c *cli.Context) error {
			changes, err := parsePartChanges(c.StringSlice("added"), c.StringSlice("removed"))
			if err != nil {
				return err
			}
			uc, engine, err := newEstimateUseCase(c)
			if err != nil {
				return err
			}
			base, err := uc.EstimateMaterials(c.Context, c.Float64("budget"), c.Float64("size"), c.String("style"))
			if err != nil {
				return err
			}
			est, err := uc.EstimateFromModelChanges(c.Context, base.Materials, changes, string(base.Style))
			if err != nil {
				return err
			}
			return printEstimate(c.App.Writer, engine.Catalog(), est, c.Bool("json"))
		},
	}
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Print the unit costs and quantities per square meter of a design style",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "style", Value: "Modern", Usage: "Design style (Modern, Classic, Rustic)"},
			&cli.BoolFlag{Name: "json", Usage: "Print JSON instead of a table"},
		},
		Action: func(c *cli.Context) error {
			entries, err := usecase.NewCatalogUseCase(nil).Materials(c.Context, c.String("style"))
			if err != nil {
				return err
			}
			return printCatalog(c.App.Writer, entries, c.Bool("json"))
		},
	}
}

func seedCatalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed-catalog",
		Usage: "Write the built-in pricing catalog to the DynamoDB catalog table",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ddb, err := database.ConnectDynamoDB(c.Context, cfg.DynamoDB)
			if err != nil {
				return err
			}
			entries := catalog.DefaultEntries()
			repo := repository.NewCatalogDynamoRepository(ddb, cfg.CatalogTable)
			if err := repo.PutEntries(c.Context, entries); err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.App.Writer, "wrote %d catalog entries to %s\n", len(entries), cfg.CatalogTable)
			return err
		},
	}
}
