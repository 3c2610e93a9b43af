package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	accountinadapter "focusflow/internal/modules/account/adapter/in"
	accountoutadapter "focusflow/internal/modules/account/adapter/out"
	accountout "focusflow/internal/modules/account/port/out"
	accountservice "focusflow/internal/modules/account/service"
	accountusecase "focusflow/internal/modules/account/usecase"
	analyticsinadapter "focusflow/internal/modules/analytics/adapter/in"
	analyticsoutadapter "focusflow/internal/modules/analytics/adapter/out"
	analyticsservice "focusflow/internal/modules/analytics/service"
	analyticsusecase "focusflow/internal/modules/analytics/usecase"
	blocklistinadapter "focusflow/internal/modules/blocklist/adapter/in"
	blocklistoutadapter "focusflow/internal/modules/blocklist/adapter/out"
	blocklistout "focusflow/internal/modules/blocklist/port/out"
	blocklistservice "focusflow/internal/modules/blocklist/service"
	blocklistusecase "focusflow/internal/modules/blocklist/usecase"
	sessioninadapter "focusflow/internal/modules/session/adapter/in"
	sessionoutadapter "focusflow/internal/modules/session/adapter/out"
	sessionout "focusflow/internal/modules/session/port/out"
	sessionservice "focusflow/internal/modules/session/service"
	sessionusecase "focusflow/internal/modules/session/usecase"
	"focusflow/internal/platform/clock"
	"focusflow/internal/platform/config"
	"focusflow/internal/platform/httpx"
	"focusflow/internal/platform/id"
	"focusflow/internal/platform/mongodb"
	"focusflow/internal/platform/sqlitedb"
)

const shutdownTimeout = 5 * time.Second

// Server is the REST backend with its record store.
type Server struct {
	Handler    http.Handler
	AccountCLI accountinadapter.CLIHandler

	addr  string
	log   hclog.Logger
	close func(context.Context) error
}

type stores struct {
	sessions sessionout.SessionStore
	entries  blocklistout.EntryStore
	accounts accountout.AccountStore
	ids      id.Generator
	close    func(context.Context) error
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		db, disconnect, err := mongodb.Connect(ctx, cfg.Store.MongoURI, cfg.Store.MongoDatabase)
		if err != nil {
			return stores{}, err
		}
		return stores{
			sessions: sessionoutadapter.NewMongoSessionStore(db),
			entries:  blocklistoutadapter.NewMongoEntryStore(db),
			accounts: accountoutadapter.NewMongoAccountStore(db),
			ids:      mongodb.ObjectIDs{},
			close:    disconnect,
		}, nil
	default:
		db, err := sqlitedb.Open(cfg.Store.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		return stores{
			sessions: sessionoutadapter.NewSQLiteSessionStore(db),
			entries:  blocklistoutadapter.NewSQLiteEntryStore(db),
			accounts: accountoutadapter.NewSQLiteAccountStore(db),
			ids:      id.UUID{},
			close:    func(context.Context) error { return db.Close() },
		}, nil
	}
}

func NewServer(ctx context.Context, cfg config.Config, log hclog.Logger) (*Server, error) {
	loc, err := clock.LoadLocation(cfg.Analytics.Timezone)
	if err != nil {
		return nil, err
	}
	st, err := openStores(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	clk := clock.SystemClock{}

	accountUC := accountusecase.NewInteractor(accountservice.NewAccountService(clk, st.ids, id.RandomHex{}, st.accounts))
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(clk, st.ids, st.sessions))
	blocklistUC := blocklistusecase.NewInteractor(blocklistservice.NewBlocklistService(clk, st.ids, st.entries))
	analyticsUC := analyticsusecase.NewInteractor(analyticsservice.NewAnalyticsService(
		clk,
		analyticsoutadapter.NewSessionSourceAdapter(sessionUC),
		loc,
	))

	auth := func(next http.Handler) http.Handler { return httpx.RequireAuth(accountUC, next) }
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	sessioninadapter.NewHTTPHandler(sessionUC).Register(mux, auth)
	blocklistinadapter.NewHTTPHandler(blocklistUC).Register(mux, auth)
	analyticsinadapter.NewHTTPHandler(analyticsUC).Register(mux, auth)

	httpLog := log.Named("http")
	return &Server{
		Handler:    httpx.LogRequests(httpLog, mux),
		AccountCLI: accountinadapter.NewCLIHandler(accountUC),
		addr:       cfg.Server.Addr,
		log:        httpLog,
		close:      st.close,
	}, nil
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
