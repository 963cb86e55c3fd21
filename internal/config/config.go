package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Experience"
	AppID       = "com.github.tartampluch.go-experience"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and exported calendars.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion       = "version"
	FlagDebug         = "debug"
	FlagAlgorithm     = "algorithm"
	FlagStart         = "start"
	FlagEnd           = "end"
	FlagDescVersion   = "Show application version and exit"
	FlagDescDebug     = "Enable debug logging to stdout"
	FlagDescAlgorithm = "Duration algorithm: calendar or bucketed (overrides the saved preference)"
	FlagDescStart     = "Start date (YYYY-MM-DD); with -end, print the duration and exit"
	FlagDescEnd       = "End date (YYYY-MM-DD); with -start, print the duration and exit"
	MsgVersionOutput  = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWinWidth        = 860
	MainWinHeight       = 640
	SettingsWindowWidth = 460

	// Preference Keys
	PrefLanguage  = "language"
	PrefAlgorithm = "algorithm"
	PrefLastRun   = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// UI Entries Table Constants
// -----------------------------------------------------------------------------

const (
	// Table Column IDs
	ColIDCompany  = 0
	ColIDStart    = 1
	ColIDEnd      = 2
	ColIDDuration = 3
	ColIDAction   = 4
	ColumnCount   = 5

	// Table Layout
	ColWidthCompany  = 220
	ColWidthDate     = 110
	ColWidthDuration = 240
	ColWidthAction   = 110
	TableMinHeight   = 260

	TablePlaceholder  = "Cell Content"
	HeaderPlaceholder = "Header"
	LogMsgOpenWin     = "Opening main window"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyWinSettings    = "win_settings_title"
	TKeyLblCompany     = "lbl_company"
	TKeyLblStart       = "lbl_start_date"
	TKeyLblEnd         = "lbl_end_date"
	TKeyHintDate       = "hint_date"
	TKeyBtnAdd         = "btn_add"
	TKeyBtnReset       = "btn_reset"
	TKeyBtnClearAll    = "btn_clear_all"
	TKeyBtnDelete      = "btn_delete"
	TKeyBtnExport      = "btn_export"
	TKeyBtnSettings    = "btn_settings"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyLblOverall     = "lbl_overall"     // Requires Total
	TKeyFmtDuration    = "format_duration" // Requires Years, Months, Days
	TKeyLblLanguage    = "lbl_language"
	TKeyHelpLanguage   = "help_language"
	TKeyLblAlgorithm   = "lbl_algorithm"
	TKeyHelpAlgorithm  = "help_algorithm"
	TKeyAlgoCalendar   = "algo_calendar"
	TKeyAlgoBucketed   = "algo_bucketed"
	TKeyLblGeneral     = "lbl_general"
	TKeyLblFooter      = "lbl_footer"
	TKeyNotifExported  = "notif_exported"
	TKeyNotifExportErr = "notif_export_error"

	// Column Headers
	TKeyColCompany  = "col_company"
	TKeyColStart    = "col_start"
	TKeyColEnd      = "col_end"
	TKeyColDuration = "col_duration"
	TKeyColActions  = "col_actions"

	// Validation Errors (UI)
	TKeyErrCompanyReq = "err_company_required"
	TKeyErrStartAfter = "err_start_after_end"
	TKeyErrDateFormat = "err_date_format"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	AlgorithmCalendar = "calendar"
	AlgorithmBucketed = "bucketed"
	DefaultAlgorithm  = AlgorithmCalendar
	DefaultLanguage   = "en"

	// Bucketed arithmetic and aggregation normalisation treat every year as
	// 365 days and every month as 30 days.
	DaysPerYear   = 365
	DaysPerMonth  = 30
	MonthsPerYear = 12
	DayLength     = 24 * time.Hour

	UIDSalt = "go-experience-v1-" // Salt for deterministic UID generation
)

// SupportedAlgorithms lists the duration algorithms in display order.
var SupportedAlgorithms = []string{AlgorithmCalendar, AlgorithmBucketed}

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	DateFormatISO        = "2006-01-02"
	DateEntryPlaceholder = "YYYY-MM-DD"
	DateEntryMaxLen      = len(DateFormatISO)
	DateSeparator        = '-'

	// FormatDuration expects years, months and days.
	FormatDuration = "%d years, %d months, %d days"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s|%d|%s"
	FormatUID       = "%s@%s"

	// File Extensions
	ExtICS            = ".ics"
	DefaultExportName = "experience.ics"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Experience//Engine//EN"
	ICalCalName = "Experience"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goexperience"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropDescription = "DESCRIPTION"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"
	PropXDuration   = "X-EXPERIENCE-DURATION"
	PropXTotal      = "X-EXPERIENCE-TOTAL"
	PropXAlgorithm  = "X-EXPERIENCE-ALGORITHM"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs & Validation)
// -----------------------------------------------------------------------------

const (
	ErrCompanyRequired  = "Company Name is required"
	ErrStartAfterEnd    = "Start Date cannot be greater than End Date"
	ErrDateParse        = "unable to parse date"
	ErrAlgorithmUnknown = "unknown duration algorithm"
	ErrHeadlessArgs     = "both -start and -end are required"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrExportWrite      = "failed to write exported calendar"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrLocNotInit       = "localizer not initialized"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackOverall = "Overall Experience: %s"

	// StubVCalendar is the minimal valid iCalendar object used when no entries exist.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	TitleExportError = "Export Error"

	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgHeadless       = "Computing duration from command line"
	MsgCalculator     = "Duration calculator selected"
	MsgEntryAdded     = "Entry added"
	MsgEntryRejected  = "Entry rejected by validation"
	MsgEntryRemoved   = "Entry removed"
	MsgEntriesCleared = "All entries cleared"
	MsgFormReset      = "Form reset"
	MsgExportDone     = "Calendar exported"
	MsgExportFailed   = "Calendar export failed"
	MsgSettingsSaved  = "Saving preferences"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLocalesReady   = "Locales ready"
	MsgLangFallback   = "Preferred language unavailable, using default"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCount     = "count"
	LogKeyIndex     = "index"
	LogKeyCompany   = "company"
	LogKeyStart     = "start"
	LogKeyEnd       = "end"
	LogKeyDuration  = "duration"
	LogKeyTotal     = "total"
	LogKeyAlgorithm = "algorithm"
	LogKeyFields    = "fields"
	LogKeyFailed    = "failed"
	LogKeyPath      = "path"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompLedger = "ledger"
	CompMain   = "main"
	CompI18n   = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
	LayoutColumnsTriple = 3
)
