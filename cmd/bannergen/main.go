package main

import (
	"context"
	"os"

	"goxtab/adapters/excel"
	"goxtab/app"
	"goxtab/internal"
	"goxtab/internal/config"
	"goxtab/internal/testkit"
)

// bannergen generates a synthetic survey dataset, runs a banner request over
// its categorical variables, and exports the workbook.
func main() {
	cfg := config.Load()
	log := internal.NewDefaultLogger()

	frame, err := testkit.GenerateSurvey(testkit.SurveyConfig{
		Rows:        cfg.Data.Rows,
		Seed:        cfg.Data.Seed,
		MissingRate: 0.02,
	})
	if err != nil {
		log.Error("generate survey: %v", err)
		os.Exit(1)
	}

	banners := app.NewBannerService(app.NewCrosstabService(), log)
	banner, err := banners.Generate(context.Background(), frame, app.BannerRequest{
		RowVariables:    []string{"gender", "age_group", "region"},
		ColumnVariables: []string{"satisfaction", "region"},
		Options:         app.DefaultOptions(),
		Combine:         true,
		Workers:         cfg.Banner.Workers,
	})
	if err != nil {
		log.Error("banner: %v", err)
		os.Exit(1)
	}
	if err := banner.Err(); err != nil {
		log.Warn("banner completed with pair failures: %v", err)
	}

	if err := excel.NewWriter().WriteBanner(cfg.Output.WorkbookPath, banner); err != nil {
		log.Error("write workbook: %v", err)
		os.Exit(1)
	}
	log.Info("wrote %s (%d tables)", cfg.Output.WorkbookPath, len(banner.Results))
}
