package main

import (
	"embed"
	"os"

	apiclient "github.com/DmitruNS/kuc/internal/adapters/api"
	dbsqlite "github.com/DmitruNS/kuc/internal/adapters/db/sqlite"
	"github.com/DmitruNS/kuc/internal/adapters/logger"
	apiapp "github.com/DmitruNS/kuc/internal/api/app"
	"github.com/DmitruNS/kuc/internal/configs"
	"github.com/DmitruNS/kuc/internal/i18n"
	attachmentsusecase "github.com/DmitruNS/kuc/internal/usecase/attachments"
	authusecase "github.com/DmitruNS/kuc/internal/usecase/auth"
	editorusecase "github.com/DmitruNS/kuc/internal/usecase/editor"
	listingusecase "github.com/DmitruNS/kuc/internal/usecase/listing"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := configs.Load()
	if err != nil {
		println("Config error:", err.Error())
		os.Exit(1)
	}
	log := logger.New(logger.Config{Level: cfg.Logger.Level, IsJSON: cfg.Logger.IsJSON})
	log.Info("starting console", "env", cfg.Env, "api", cfg.APIBaseURL)

	// Local store for the session token and UI preferences
	db, dberr := dbsqlite.Init(cfg.DBPath)
	if dberr != nil {
		log.Error("local db init failed", "error", dberr)
		os.Exit(1)
	}
	settingsRepo := dbsqlite.NewSettingsRepo(db)
	presetRepo := dbsqlite.NewPresetRepo(db)

	// Remote listing API client
	client := apiclient.New(cfg.APIBaseURL, settingsRepo, log)

	// Core services
	authSvc := authusecase.New(client, settingsRepo, log)
	editorSvc := editorusecase.New(client, i18n.Languages(), log)
	filesSvc := attachmentsusecase.New(client, log)

	settingsAPI := apiapp.NewSettingsAPI(settingsRepo, cfg)
	exporters := apiapp.NewDefaultExporterRegistry()
	listingSvc := listingusecase.New(client, presetRepo, exporters, settingsAPI.Language(), log)

	// API bindings
	authAPI := apiapp.NewAuthAPI(authSvc)
	editorAPI := apiapp.NewEditorAPI(editorSvc, filesSvc, authSvc)
	filesAPI := apiapp.NewFilesAPI(filesSvc, authSvc)
	listingAPI := apiapp.NewListingAPI(listingSvc, authSvc)
	exportAPI := apiapp.NewExportAPI(listingSvc, authSvc)

	app := NewApp(log)

	err = wails.Run(&options.App{
		Title:  "kuc",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
			authAPI,
			editorAPI,
			filesAPI,
			listingAPI,
			exportAPI,
			settingsAPI,
		},
	})

	if err != nil {
		log.Error("run failed", "error", err)
	}
}
