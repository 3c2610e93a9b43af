package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"focusflow/internal/bootstrap"
	clientdto "focusflow/internal/modules/client/dto"
	"focusflow/internal/platform/config"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type env struct {
	configPath string
}

func (e *env) load() (config.Config, hclog.Logger, error) {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.New("focusflow", cfg.Log.Level, cfg.Log.JSON), nil
}

func (e *env) client(ctx context.Context) (*bootstrap.Client, error) {
	cfg, log, err := e.load()
	if err != nil {
		return nil, err
	}
	return bootstrap.NewClient(ctx, cfg, log)
}

func (e *env) server(ctx context.Context) (*bootstrap.Server, error) {
	cfg, log, err := e.load()
	if err != nil {
		return nil, err
	}
	return bootstrap.NewServer(ctx, cfg, log)
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "focusflow",
		Short:         "Pomodoro focus timer with site blocking and analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	root.AddCommand(
		newServeCmd(e),
		newUserCmd(e),
		newSessionCmd(e),
		newTimerCmd(e),
		newStatsCmd(e),
		newReportCmd(e),
		newBlocklistCmd(e),
		newSettingsCmd(e),
		newExtensionCmd(e),
		newNotifyCmd(e),
		newConfigCmd(e),
	)
	return root
}

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			srv, err := e.server(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = srv.Close(context.Background()) }()
			return srv.Serve(ctx)
		},
	}
}

func newUserCmd(e *env) *cobra.Command {
	user := &cobra.Command{Use: "user", Short: "Manage accounts on this server"}

	user.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create an account and print its bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			srv, err := e.server(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = srv.Close(ctx) }()
			out, err := srv.AccountCLI.Register(ctx, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user created: %s (%s)\ntoken: %s\n", out.Name, out.UserID, out.Token)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "the token is shown only once; store it as client.token")
			return nil
		},
	})

	user.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			srv, err := e.server(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = srv.Close(ctx) }()
			accounts, err := srv.AccountCLI.List(ctx)
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no users")
				return nil
			}
			for _, a := range accounts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", a.UserID, a.Name, a.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	})
	return user
}

func printActive(cmd *cobra.Command, a clientdto.Active) {
	title := a.Title
	if title == "" {
		title = "(untitled)"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %s %q work=%dmin break=%dmin remaining=%s\n", a.SessionID, title, a.WorkDuration, a.BreakDuration, a.Clock)
}

func newSessionCmd(e *env) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Focus session lifecycle"}

	var work, brk int
	var title string
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			active, err := app.SessionCLI.Start(ctx, work, brk, title)
			if err != nil {
				return err
			}
			printActive(cmd, active)
			return nil
		},
	}
	start.Flags().IntVar(&work, "work", 25, "work duration in minutes")
	start.Flags().IntVar(&brk, "break", 5, "break duration in minutes")
	start.Flags().StringVar(&title, "title", "", "what you are working on")

	active := &cobra.Command{
		Use:   "active",
		Short: "Show the running session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			a, err := app.SessionCLI.Active(ctx)
			if errors.Is(err, apperrors.ErrNoActiveSession) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no active session")
				return nil
			}
			if err != nil {
				return err
			}
			printActive(cmd, a)
			return nil
		},
	}

	end := &cobra.Command{
		Use:   "end",
		Short: "End the running session now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.Stop(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session stopped")
			return nil
		},
	}

	var reason string
	abort := &cobra.Command{
		Use:   "abort --reason <text>",
		Short: "Abort the running session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(reason) == "" {
				return fmt.Errorf("--reason is required")
			}
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.Abort(ctx, reason); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session aborted")
			return nil
		},
	}
	abort.Flags().StringVar(&reason, "reason", "", "why the session is aborted")

	interrupt := &cobra.Command{
		Use:   "interrupt",
		Short: "Record an interruption on the running session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			count, err := app.SessionCLI.Interrupt(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "interruptions: %d\n", count)
			return nil
		},
	}

	session.AddCommand(start, active, end, abort, interrupt)
	return session
}

func newTimerCmd(e *env) *cobra.Command {
	var work, brk int
	var title string
	timer := &cobra.Command{
		Use:   "timer",
		Short: "Show the countdown of the running session, or start one with --work",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			var active clientdto.Active
			if work > 0 {
				active, err = app.SessionCLI.Start(ctx, work, brk, title)
			} else {
				active, err = app.SessionCLI.Active(ctx)
				if errors.Is(err, apperrors.ErrNoActiveSession) {
					return fmt.Errorf("no active session; start one with --work <minutes>")
				}
			}
			if err != nil {
				return err
			}
			return bootstrap.RunTimer(app, active)
		},
	}
	timer.Flags().IntVar(&work, "work", 0, "start a new session of this many minutes")
	timer.Flags().IntVar(&brk, "break", 5, "break duration in minutes for a new session")
	timer.Flags().StringVar(&title, "title", "", "title for a new session")
	return timer
}

func newStatsCmd(e *env) *cobra.Command {
	var width int
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Render your analytics in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Stats(ctx, width)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	stats.Flags().IntVar(&width, "width", 80, "wrap width")
	return stats
}

func newReportCmd(e *env) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Export analytics reports"}

	var pdfOut string
	pdf := &cobra.Command{
		Use:   "pdf --out <file>",
		Short: "Write a PDF report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(pdfOut) == "" {
				return fmt.Errorf("--out is required")
			}
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.ExportPDF(ctx, pdfOut)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report written: %s (%d pages)\n", out.Path, out.Pages)
			return nil
		},
	}
	pdf.Flags().StringVar(&pdfOut, "out", "", "output PDF path")

	var mdOut string
	md := &cobra.Command{
		Use:   "md [--out <file>]",
		Short: "Print the Markdown report, or update its block inside a note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			if strings.TrimSpace(mdOut) == "" {
				out, err := app.ReportCLI.Markdown(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			out, err := app.ReportCLI.ExportMarkdown(ctx, mdOut)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report block updated: %s\n", out.Path)
			return nil
		},
	}
	md.Flags().StringVar(&mdOut, "out", "", "Markdown note to update")

	report.AddCommand(pdf, md)
	return report
}

func newBlocklistCmd(e *env) *cobra.Command {
	blocklist := &cobra.Command{Use: "blocklist", Short: "Manage blocked websites and apps"}

	blocklist.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List blocklist entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			entries, err := app.SessionCLI.Blocklist(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "blocklist is empty")
				return nil
			}
			for _, entry := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", entry.ID, entry.Type, entry.Value)
			}
			return nil
		},
	})

	var websites, apps []string
	add := &cobra.Command{
		Use:   "add --website <host> --app <name>",
		Short: "Add websites and apps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(websites) == 0 && len(apps) == 0 {
				return fmt.Errorf("at least one --website or --app is required")
			}
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.AddToBlocklist(ctx, websites, apps)
			if err != nil {
				return err
			}
			for _, entry := range out.Inserted {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s %s (%s)\n", entry.Type, entry.Value, entry.ID)
			}
			for _, entry := range out.Duplicates {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "already blocked %s %s\n", entry.Type, entry.Value)
			}
			return nil
		},
	}
	add.Flags().StringSliceVar(&websites, "website", nil, "website host to block")
	add.Flags().StringSliceVar(&apps, "app", nil, "application name to block")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a blocklist entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.RemoveFromBlocklist(ctx, args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Item removed from blocklist")
			return nil
		},
	}

	blocklist.AddCommand(add, remove)
	return blocklist
}

func newSettingsCmd(e *env) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Notification and audio preferences"}

	settings.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			values, err := app.SettingsCLI.List(ctx)
			if err != nil {
				return err
			}
			for _, s := range values {
				suffix := ""
				if s.Default {
					suffix = "\t(default)"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s%s\n", s.Name, s.Value, suffix)
			}
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "get <name>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			s, err := app.SettingsCLI.Get(ctx, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.Value)
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "set <name> <value>",
		Short: "Store one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			s, err := app.SettingsCLI.Set(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", s.Name, s.Value)
			return nil
		},
	})
	return settings
}

func newExtensionCmd(e *env) *cobra.Command {
	extension := &cobra.Command{Use: "extension", Short: "Site blocker plugin"}

	extension.AddCommand(&cobra.Command{
		Use:   "check <url>",
		Short: "Visit a URL in the blocker and report whether it is blocked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			d, err := app.ExtensionCLI.Check(ctx, args[0])
			if err != nil {
				return err
			}
			if !d.Blocked {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "allowed %s\n", d.Host)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "blocked %s rule=%d interruption_reported=%t\n", d.Host, d.RuleID, d.Reported)
			return nil
		},
	})

	extension.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the blocker's session and rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			st, err := app.ExtensionCLI.Status(ctx)
			if err != nil {
				return err
			}
			if !st.Active {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no session")
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %s\n", st.SessionID)
			}
			for _, r := range st.Rules {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rule %d\t%s\n", r.ID, r.Domain)
			}
			for _, t := range st.Tabs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tab %d\t%s\treloads=%d\n", t.ID, t.URL, t.Reloads)
			}
			return nil
		},
	})

	extension.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate the blocker manifest, checksum and handshake",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			r, err := app.ExtensionCLI.Doctor(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s binary=%s manifest=%t reachable=%t checksum=%t handshake=%t\n",
				r.Name, r.Version, r.Binary, r.ManifestValid, r.BinaryReachable, r.ChecksumValid, r.HandshakeOK)
			if r.Error != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "error: %s\n", r.Error)
			}
			return nil
		},
	})
	return extension
}

func newNotifyCmd(e *env) *cobra.Command {
	notify := &cobra.Command{Use: "notify", Short: "Desktop notifications and sounds"}
	notify.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Play the test sound and show the test notification",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := e.client(ctx)
			if err != nil {
				return err
			}
			d, err := app.NotifyCLI.Test(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notification shown=%t sound=%t\n", d.Shown, d.Sounded)
			return nil
		},
	})
	return notify
}

func newConfigCmd(e *env) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration file"}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := e.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "config written: %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}
