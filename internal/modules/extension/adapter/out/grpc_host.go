package out

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	blockerrpc "focusflow/internal/modules/extension/adapter/out/rpc"
	"focusflow/internal/modules/extension/domain"
	extensionout "focusflow/internal/modules/extension/port/out"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

// GRPCHost launches the blocker once per call and kills it afterwards.
type GRPCHost struct {
	log hclog.Logger
	env []string
}

// NewGRPCHost passes env to the blocker on top of the current environment.
// Blocker logs are dropped unless log is at debug level or lower.
func NewGRPCHost(log hclog.Logger, env []string) extensionout.Host {
	return &GRPCHost{log: log, env: env}
}

func (h *GRPCHost) Handshake(ctx context.Context, manifest domain.Manifest) (domain.Status, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Status{}, err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	out, err := client.Status(callCtx)
	if err != nil {
		return domain.Status{}, wrapCall("status", callCtx, err)
	}
	st := domain.Status{Active: out.Active, SessionID: out.SessionID}
	for _, r := range out.Rules {
		st.Rules = append(st.Rules, domain.NewBlockRule(r.ID, r.Domain))
	}
	for _, t := range out.Tabs {
		st.Tabs = append(st.Tabs, domain.Tab{ID: t.ID, URL: t.URL, Reloads: t.Reloads})
	}
	return st, nil
}

func (h *GRPCHost) Deliver(ctx context.Context, manifest domain.Manifest, message domain.Message) error {
	raw, err := domain.Encode(message)
	if err != nil {
		return err
	}
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	if err := client.Deliver(callCtx, &blockerrpc.DeliverRequest{MessageJSON: string(raw)}); err != nil {
		return wrapCall("deliver", callCtx, err)
	}
	return nil
}

func (h *GRPCHost) Navigate(ctx context.Context, manifest domain.Manifest, url string) (domain.Decision, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Decision{}, err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	out, err := client.Navigate(callCtx, &blockerrpc.NavigateRequest{URL: url})
	if err != nil {
		return domain.Decision{}, wrapCall("navigate", callCtx, err)
	}
	return domain.Decision{URL: out.URL, Host: out.Host, Blocked: out.Blocked, RuleID: out.RuleID, Reported: out.Reported}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest) (blockerrpc.BlockerClient, func(), error) {
	cmd := exec.Command(manifest.Binary)
	cmd.Env = append(os.Environ(), h.env...)
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  blockerrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          blockerrpc.PluginMap(nil),
		Cmd:              cmd,
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           h.pluginLogger(),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start blocker: %w", err)
	}
	raw, err := rpcClient.Dispense(blockerrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense blocker: %w", err)
	}
	typed, ok := raw.(blockerrpc.BlockerClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("blocker rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) pluginLogger() hclog.Logger {
	if h.log != nil && h.log.IsDebug() {
		return h.log.Named("blocker")
	}
	return hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel})
}

func wrapCall(op string, callCtx context.Context, err error) error {
	if callCtx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: %s", domain.ErrBlockerTimeout, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
