// Material estimator CLI.
//
// Usage:
//
//	estimator estimate --budget 1000000 --size 100 --style Modern
//	estimator components --budget 1000000 --size 100 --style Modern --add wall=3 --remove window=1
//	estimator model-changes --budget 1000000 --size 100 --style Modern --added Bricks=2 --removed Glass=1
//	estimator catalog --style Classic
//	estimator seed-catalog
package main

import (
	"fmt"
	"os"

	"material_estimator/internal/domain/estimation"
	"material_estimator/internal/usecase"
	"material_estimator/pkg/logger"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "estimator",
		Usage:   "Construction material and cost estimates by floor area and design style",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			estimateCommand(),
			componentsCommand(),
			modelChangesCommand(),
			catalogCommand(),
			seedCatalogCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newEstimateUseCase(c *cli.Context) (*usecase.EstimateUseCase, *estimation.Engine, error) {
	zl, err := logger.New(c.String("log-level"), "console")
	if err != nil {
		return nil, nil, err
	}
	engine := estimation.NewEngine(nil)
	return usecase.NewEstimateUseCase(engine, zl), engine, nil
}
