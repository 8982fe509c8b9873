package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/arcadia-tracker/arcadia-ui/internal/config"
	"github.com/arcadia-tracker/arcadia-ui/internal/logger"
)

// SettingsDialog edits the display preferences
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()
	log          logger.Logger

	// UI components
	languageSelect    *widget.Select
	timeZoneEntry     *widget.Entry
	logLevelSelect    *widget.Select
	showDecimalsCheck *widget.Check
	decimalsSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(), log logger.Logger) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
		log:          logger.OrNop(log),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	languages := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		languages = append(languages, code)
	}
	sort.Strings(languages)
	sd.languageSelect = widget.NewSelect(languages, nil)

	sd.timeZoneEntry = widget.NewEntry()
	sd.timeZoneEntry.SetPlaceHolder(config.DefaultTimeZone)
	sd.timeZoneEntry.Validator = func(name string) error {
		if name == "" || config.IsValidTimeZone(name) {
			return nil
		}
		return errInvalidTimeZone
	}

	sd.logLevelSelect = widget.NewSelect(LogLevels, nil)

	decimals := make([]string, 0, config.MaxBonusDisplayDecimals+1)
	for i := 0; i <= config.MaxBonusDisplayDecimals; i++ {
		decimals = append(decimals, strconv.Itoa(i))
	}
	sd.decimalsSelect = widget.NewSelect(decimals, nil)
	sd.showDecimalsCheck = widget.NewCheck(t(KeyShowBonusDecimals), func(show bool) {
		if show {
			sd.decimalsSelect.Enable()
		} else {
			sd.decimalsSelect.Disable()
		}
	})

	form := container.NewVBox(
		widget.NewLabel(t(KeyLanguage)),
		sd.languageSelect,
		widget.NewLabel(t(KeyTimeZone)),
		sd.timeZoneEntry,
		widget.NewLabel(t(KeyLogLevel)),
		sd.logLevelSelect,
		widget.NewSeparator(),
		sd.showDecimalsCheck,
		widget.NewLabel(t(KeyBonusDecimals)),
		sd.decimalsSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsW, SettingsH))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.timeZoneEntry.SetText(sd.settings.GetTimeZone())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.decimalsSelect.SetSelected(strconv.Itoa(sd.settings.GetBonusDisplayDecimals()))
	sd.showDecimalsCheck.SetChecked(sd.settings.GetShowBonusDecimals())
	if !sd.showDecimalsCheck.Checked {
		sd.decimalsSelect.Disable()
	}
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	t := sd.localization.GetText

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	if !sd.settings.SetTimeZone(sd.timeZoneEntry.Text) {
		sd.log.Warn("time zone rejected", logger.String("time_zone", sd.timeZoneEntry.Text))
		dialog.ShowError(errInvalidTimeZone, sd.window)
		return
	}
	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}
	sd.settings.SetShowBonusDecimals(sd.showDecimalsCheck.Checked)
	if digits, err := strconv.Atoi(sd.decimalsSelect.Selected); err == nil {
		sd.settings.SetBonusDisplayDecimals(digits)
	}

	sd.log.Info("settings saved",
		logger.String("language", sd.settings.GetLanguage()),
		logger.String("time_zone", sd.settings.GetTimeZone()))

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(t(KeySettings), t(KeySettingsSaved), sd.window)
}
