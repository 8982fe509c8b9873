package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/arcadia-tracker/arcadia-ui/internal/config"
	"github.com/arcadia-tracker/arcadia-ui/internal/logger"
	"github.com/arcadia-tracker/arcadia-ui/internal/model"
	"github.com/arcadia-tracker/arcadia-ui/internal/store"
	"github.com/arcadia-tracker/arcadia-ui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "org.arcadia-tracker.arcadia-ui"
	AppName = "Arcadia"
)

// Settings pushed by the backend on login; only some keys are present
const previewSettings = `{
	"open_signups": true,
	"bonus_points_alias": "Gold",
	"bonus_points_decimal_places": 2,
	"displayed_top_bar_stats": ["uploaded", "ratio", "bonus_points"]
}`

func main() {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	log, err := logger.New(logger.Config{
		Level:       settings.GetLogLevel(),
		Development: version == "dev",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting", logger.String("app", AppName), logger.String("version", version))

	appCtx := store.NewAppContext(log)
	if err := appCtx.Settings.MergeJSON([]byte(previewSettings)); err != nil {
		log.Error("apply preview settings", logger.Error(err))
	}
	appCtx.Notifications.Replace(store.NotificationCounts{
		UnreadConversations:    2,
		UnreadForumThreadPosts: 5,
		UnreadStaffPMs:         1,
	})

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	if _, err := ui.NewRootUI(myWindow, myApp, appCtx, previewProfile()); err != nil {
		log.Error("create ui", logger.Error(err))
		exit(log, 1)
	}

	myWindow.ShowAndRun()
}

// osExit is replaced in tests
var osExit = os.Exit

// exit flushes buffered log entries before leaving, since os.Exit skips
// deferred calls
func exit(log logger.Logger, code int) {
	_ = log.Sync()
	osExit(code)
}

func previewProfile() ui.Profile {
	now := time.Now()
	return ui.Profile{
		Uploaded:              3_221_225_472_000,
		AverageSeedingSeconds: 3*86400 + 4*3600,
		BonusPointsRaw:        1_234_567,
		LastSeen:              now.Add(-42 * time.Minute),
		Joined:                now.AddDate(-2, -3, 0),
		LatestEdition: model.EditionGroupInfoLite{
			ReleaseDate: "2001-05-01",
			Name:        "Deluxe",
			Source:      model.SourceCD,
			AdditionalInformation: &model.AdditionalInformation{
				Label:           "Parlophone",
				CatalogueNumber: "7243 5 35104 2 4",
			},
		},
		Library: []ui.LibrarySlice{
			{ContentType: model.ContentTypeMusic, Count: 412},
			{ContentType: model.ContentTypeMovie, Count: 230},
			{ContentType: model.ContentTypeTVShow, Count: 118},
			{ContentType: model.ContentTypeBook, Count: 96},
			{ContentType: model.ContentTypeSoftware, Count: 40},
			{ContentType: model.ContentTypePodcast, Count: 9},
		},
	}
}
