package bootstrap

import (
	"context"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	clientinadapter "focusflow/internal/modules/client/adapter/in"
	clientoutadapter "focusflow/internal/modules/client/adapter/out"
	clientdto "focusflow/internal/modules/client/dto"
	clientservice "focusflow/internal/modules/client/service"
	clientusecase "focusflow/internal/modules/client/usecase"
	extensioninadapter "focusflow/internal/modules/extension/adapter/in"
	extensionoutadapter "focusflow/internal/modules/extension/adapter/out"
	extensionservice "focusflow/internal/modules/extension/service"
	extensionusecase "focusflow/internal/modules/extension/usecase"
	notifyinadapter "focusflow/internal/modules/notify/adapter/in"
	notifyoutadapter "focusflow/internal/modules/notify/adapter/out"
	notifyservice "focusflow/internal/modules/notify/service"
	notifyusecase "focusflow/internal/modules/notify/usecase"
	reportinadapter "focusflow/internal/modules/report/adapter/in"
	reportoutadapter "focusflow/internal/modules/report/adapter/out"
	reportservice "focusflow/internal/modules/report/service"
	reportusecase "focusflow/internal/modules/report/usecase"
	settingsinadapter "focusflow/internal/modules/settings/adapter/in"
	settingsoutadapter "focusflow/internal/modules/settings/adapter/out"
	settingsservice "focusflow/internal/modules/settings/service"
	settingsusecase "focusflow/internal/modules/settings/usecase"
	"focusflow/internal/platform/clock"
	"focusflow/internal/platform/config"
	uiapp "focusflow/internal/ui/app"
)

// LocalUser keys settings when client.user_id is not configured.
const LocalUser = "local"

// Client is everything the terminal side of FocusFlow needs.
type Client struct {
	SessionCLI   clientinadapter.CLIHandler
	SettingsCLI  settingsinadapter.CLIHandler
	ExtensionCLI extensioninadapter.CLIHandler
	NotifyCLI    notifyinadapter.CLIHandler
	ReportCLI    reportinadapter.CLIHandler
}

func NewClient(ctx context.Context, cfg config.Config, log hclog.Logger) (*Client, error) {
	clk := clock.SystemClock{}
	user := cfg.Client.UserID
	if user == "" {
		user = LocalUser
	}

	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(
		settingsoutadapter.NewYAMLSettingStore(cfg.Client.SettingsPath()),
	))

	notifyLog := log.Named("notify")
	beeper := notifyoutadapter.NewBeeep("")
	notifyUC := notifyusecase.NewInteractor(notifyservice.NewNotifier(
		beeper,
		beeper,
		notifyoutadapter.NewSettingsPreferences(settingsUC),
		notifyLog,
	))
	if err := notifyUC.Init(ctx); err != nil {
		notifyLog.Warn("desktop notifications unavailable", "error", err)
	}
	if err := notifyUC.Configure(ctx, user); err != nil {
		notifyLog.Warn("notifier left unconfigured", "error", err)
	}

	var env []string
	if cfg.File != "" {
		env = append(env, config.FileEnv+"="+cfg.File)
	}
	extensionLog := log.Named("extension")
	relay := extensionusecase.NewRelayInteractor(extensionservice.NewRelay(
		extensionoutadapter.NewFileManifestStore(cfg.Client.PluginsDir),
		extensionoutadapter.NewGRPCHost(extensionLog, env),
		extensionLog,
	))

	api := clientoutadapter.NewRESTClient(cfg.Client.BaseURL, cfg.Client.Token, &http.Client{Timeout: 10 * time.Second})
	clientUC := clientusecase.NewInteractor(clientservice.NewController(
		clk,
		api,
		clientoutadapter.NewFileActiveCache(cfg.Client.ActiveSessionPath()),
		clientoutadapter.NewExtensionBridge(relay),
		clientoutadapter.NewNotifierBridge(notifyUC),
		cfg.Client.Token,
		log.Named("session"),
	), clk)

	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		clk,
		user,
		reportoutadapter.NewClientBundleSource(clientUC),
		reportoutadapter.NewGlamourRenderer("dark"),
		reportoutadapter.NewMarotoWriter(),
		reportoutadapter.NewRSCInspector(),
		reportoutadapter.NewFileNoteStore(),
	))

	return &Client{
		SessionCLI:   clientinadapter.NewCLIHandler(clientUC),
		SettingsCLI:  settingsinadapter.NewCLIHandler(settingsUC, user),
		ExtensionCLI: extensioninadapter.NewCLIHandler(relay),
		NotifyCLI:    notifyinadapter.NewCLIHandler(notifyUC),
		ReportCLI:    reportinadapter.NewCLIHandler(reportUC),
	}, nil
}

// RunTimer shows the running session until the user quits.
func RunTimer(app *Client, active clientdto.Active) error {
	model := uiapp.NewModel(app.SessionCLI, app.ReportCLI, active)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
