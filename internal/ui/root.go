package ui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/arcadia-tracker/arcadia-ui/internal/config"
	"github.com/arcadia-tracker/arcadia-ui/internal/edition"
	"github.com/arcadia-tracker/arcadia-ui/internal/format"
	"github.com/arcadia-tracker/arcadia-ui/internal/logger"
	"github.com/arcadia-tracker/arcadia-ui/internal/model"
	"github.com/arcadia-tracker/arcadia-ui/internal/store"
)

var errInvalidTimeZone = errors.New("unknown time zone")

// LibrarySlice is the number of titles of one content type
type LibrarySlice struct {
	ContentType model.ContentType
	Count       int
}

// Profile is the user data shown on the dashboard
type Profile struct {
	Uploaded              int64
	AverageSeedingSeconds int64
	BonusPointsRaw        int64
	LastSeen              time.Time
	Joined                time.Time
	LatestEdition         model.EditionGroupInfoLite
	Library               []LibrarySlice
}

// RootUI is the dashboard window
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	formatter    *format.Formatter
	appCtx       *store.AppContext
	profile      Profile
	log          logger.Logger

	chartTitle    *widget.Label
	pieChart      *PieChart
	notifications *widget.Form
	samples       *widget.Form
	notifCard     *widget.Card
	samplesCard   *widget.Card
	session       *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, appCtx *store.AppContext, profile Profile) (*RootUI, error) {
	log := logger.OrNop(appCtx.Logger)
	settings := config.NewSettings(app)

	localization, err := NewLocalization(log)
	if err != nil {
		return nil, fmt.Errorf("init localization: %w", err)
	}
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		appCtx:       appCtx,
		profile:      profile,
		log:          log,
	}
	ui.rebuildFormatter()

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Store callbacks may fire off the UI goroutine
	appCtx.Notifications.SetUpdateCallback(func(store.NotificationCounts) {
		fyne.Do(ui.refreshNotifications)
	})
	appCtx.Settings.SetUpdateCallback(func(model.PublicArcadiaSettings) {
		fyne.Do(ui.refreshSamples)
	})

	ui.setupUI()
	log.Info("root ui initialized",
		logger.String("language", localization.GetCurrentLanguage()),
		logger.String("time_zone", settings.GetTimeZone()))
	return ui, nil
}

// Localization returns the active translations
func (ui *RootUI) Localization() *Localization {
	return ui.localization
}

func (ui *RootUI) rebuildFormatter() {
	ui.formatter = format.New(
		format.WithLocation(ui.settings.Location()),
		format.WithLanguage(ui.localization.Tag()),
		format.WithTranslator(ui.localization),
	)
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.chartTitle = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.pieChart = NewPieChart(ui.log)
	ui.notifications = widget.NewForm()
	ui.samples = widget.NewForm()
	ui.session = widget.NewLabel("")

	ui.notifCard = widget.NewCard("", "", ui.notifications)
	ui.samplesCard = widget.NewCard("", "", ui.samples)

	side := container.NewVBox(ui.notifCard, ui.samplesCard)
	content := container.NewBorder(
		ui.chartTitle, // top
		ui.session,    // bottom
		nil,           // left
		side,          // right
		container.NewCenter(ui.pieChart.Container()),
	)

	ui.window.SetContent(content)
	ui.refreshUITexts()
}

func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	settingsItem := fyne.NewMenuItem(t(KeySettings), ui.onShowSettings)
	logoutItem := fyne.NewMenuItem(t(KeyLogout), ui.onLogout)

	languageMenu := fyne.NewMenu(t(KeyLanguage))
	for _, code := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(code, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(t(KeyFile), settingsItem, logoutItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.log.Debug("language changed", logger.String("language", langCode))

	ui.rebuildFormatter()
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved, ui.log).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.rebuildFormatter()
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) onLogout() {
	ui.appCtx.Logout()
	ui.refreshUITexts()
}

// refreshUITexts redraws every text that depends on language or settings
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(KeyAppTitle))
	ui.chartTitle.SetText(t(KeyLibraryChart))
	ui.notifCard.SetTitle(t(KeyNotifications))
	ui.samplesCard.SetTitle(t(KeySampleValues))
	ui.session.SetText(t(KeySession) + MiddleDotSeparator + ui.appCtx.SessionID.String())

	values := make([]float64, 0, len(ui.profile.Library))
	names := make([]string, 0, len(ui.profile.Library))
	for _, slice := range ui.profile.Library {
		values = append(values, float64(slice.Count))
		names = append(names, t(ContentTypeKey(slice.ContentType)))
	}
	ui.pieChart.SetData(values, names)

	ui.refreshNotifications()
	ui.refreshSamples()
}

func (ui *RootUI) refreshNotifications() {
	counts := ui.appCtx.Notifications.Counts()
	ui.notifications.Items = nil
	for _, kind := range store.AllNotificationKinds() {
		value := strconv.Itoa(counts.Get(kind))
		ui.notifications.Append(ui.localization.GetText(NotificationKey(kind)), widget.NewLabel(value))
	}
	ui.notifications.Refresh()
	ui.log.Debug("notifications refreshed", logger.Int("total", counts.Total()))
}

func (ui *RootUI) refreshSamples() {
	t := ui.localization.GetText
	site := ui.appCtx.Settings.Settings()
	p := ui.profile

	bonusLabel := t(KeySampleBonusPoints)
	if site.BonusPointsAlias != "" {
		bonusLabel = site.BonusPointsAlias
	}
	bonus := ui.formatter.BonusPoints(p.BonusPointsRaw, site.BonusPointsDecimalPlaces)
	if ui.settings.GetShowBonusDecimals() {
		bonus = ui.formatter.BonusPointsDecimals(p.BonusPointsRaw, site.BonusPointsDecimalPlaces, ui.settings.GetBonusDisplayDecimals())
	}

	editionLabel := edition.Label(p.LatestEdition)
	if editionLabel == "" {
		editionLabel = DashPlaceholder
	}

	ui.samples.Items = nil
	ui.samples.Append(t(KeySampleUploaded), widget.NewLabel(format.Bytes(p.Uploaded)))
	ui.samples.Append(t(KeySampleSeedingTime), widget.NewLabel(format.Duration(p.AverageSeedingSeconds)))
	ui.samples.Append(bonusLabel, widget.NewLabel(bonus))
	ui.samples.Append(t(KeySampleLastSeen), widget.NewLabel(ui.formatter.RelativeTime(p.LastSeen)))
	ui.samples.Append(t(KeySampleJoined), widget.NewLabel(ui.formatter.AbsoluteTime(p.Joined)))
	ui.samples.Append(t(KeySampleEdition), widget.NewLabel(editionLabel))
	ui.samples.Refresh()
}
