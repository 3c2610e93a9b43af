package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	extensionout "focusflow/internal/modules/extension/adapter/out"
	blockerrpc "focusflow/internal/modules/extension/adapter/out/rpc"
	extensionin "focusflow/internal/modules/extension/port/in"
	"focusflow/internal/modules/extension/service"
	"focusflow/internal/modules/extension/usecase"
	"focusflow/internal/platform/config"
)

type server struct {
	blocker extensionin.Blocker
}

func (s *server) Status(ctx context.Context, _ *blockerrpc.Empty) (*blockerrpc.StatusResponse, error) {
	st, err := s.blocker.Status(ctx)
	if err != nil {
		return nil, err
	}
	out := &blockerrpc.StatusResponse{Active: st.Active, SessionID: st.SessionID}
	for _, r := range st.Rules {
		out.Rules = append(out.Rules, blockerrpc.RuleInfo{ID: r.ID, Domain: r.Domain})
	}
	for _, t := range st.Tabs {
		out.Tabs = append(out.Tabs, blockerrpc.TabInfo{ID: t.ID, URL: t.URL, Reloads: t.Reloads})
	}
	return out, nil
}

func (s *server) Deliver(ctx context.Context, in *blockerrpc.DeliverRequest) (*blockerrpc.Empty, error) {
	if err := s.blocker.Deliver(ctx, []byte(in.MessageJSON)); err != nil {
		return nil, err
	}
	return &blockerrpc.Empty{}, nil
}

func (s *server) Navigate(ctx context.Context, in *blockerrpc.NavigateRequest) (*blockerrpc.NavigateResponse, error) {
	d, err := s.blocker.Navigate(ctx, in.URL)
	if err != nil {
		return nil, err
	}
	return &blockerrpc.NavigateResponse{URL: d.URL, Host: d.Host, Blocked: d.Blocked, RuleID: d.RuleID, Reported: d.Reported}, nil
}

func main() {
	log := hclog.New(&hclog.LoggerOptions{
		Name:       "blocker",
		Level:      hclog.Debug,
		Output:     os.Stderr,
		JSONFormat: true,
	})
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	state := extensionout.NewFileStateStore(cfg.Client.ExtensionStatePath())
	blocker := usecase.NewBlockerInteractor(service.NewBlocker(
		extensionout.NewMemoryRuleEngine(),
		state,
		state,
		extensionout.NewHTTPInterruptReporter(cfg.Client.BaseURL, nil),
		log,
	))
	if err := blocker.Restore(context.Background()); err != nil {
		log.Error("restore blocker state", "error", err)
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: blockerrpc.HandshakeConfig,
		Plugins:         blockerrpc.PluginMap(&server{blocker: blocker}),
		GRPCServer:      plugin.DefaultGRPCServer,
		Logger:          log,
	})
}
