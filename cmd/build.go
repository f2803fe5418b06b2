package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pedraamn/poison-ivy-removal/internal/cities"
	"github.com/pedraamn/poison-ivy-removal/internal/config"
	"github.com/pedraamn/poison-ivy-removal/internal/content"
	"github.com/pedraamn/poison-ivy-removal/internal/model"
	"github.com/pedraamn/poison-ivy-removal/internal/site"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site into the output directory",
	Long: `The build command loads the site content and the city table, renders
the homepage, the cost and how-to guides, and one page per city, and writes
the result (plus robots.txt, sitemap.xml, and the shared site image) into
the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(appConfig)
	},
}

func runBuildProcess(cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	contentFile := cfg.ContentFile
	if _, err := os.Stat(contentFile); os.IsNotExist(err) {
		logger.Info("content file not found, using embedded default content", "path", contentFile)
		contentFile = ""
	}
	c, err := content.Load(contentFile)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	return site.New(cfg, c, citySource(cfg, c), logger).Build()
}

// citySource prefers an inline city list in the content file over the CSV.
func citySource(cfg config.Config, c *content.Content) cities.Source {
	if len(c.Cities) > 0 {
		rows := make([]model.CityRecord, len(c.Cities))
		for i, e := range c.Cities {
			rows[i] = model.CityRecord{City: e.City, State: e.State, CostMultiplier: e.Col}
		}
		return cities.NewStatic(rows)
	}
	return cities.FileSource{Path: cfg.CitiesFile}
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
