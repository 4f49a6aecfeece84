package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/diarykeeper/internal/buildinfo"
	"github.com/dmitrijs2005/diarykeeper/internal/client/cli"
	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/config"
	"github.com/dmitrijs2005/diarykeeper/internal/client/session"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
	"github.com/dmitrijs2005/diarykeeper/internal/timex"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, "text")

	api, err := client.NewGRPCClient(cfg.ServerEndpointAddr,
		client.WithAPIKey(cfg.IdentityAPIKey),
		client.WithRequestTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer api.Close()

	provider := session.NewProvider(session.Config{
		APIKey:      cfg.IdentityAPIKey,
		MockDelay:   cfg.MockLoginDelay,
		SessionFile: cfg.SessionFile,
	}, api, timex.RealClock{}, logger)

	mgr := session.NewManager(provider, logger)
	defer mgr.Close()

	api.UseTokenSource(mgr)
	mgr.Initialize()

	app := cli.NewApp(cfg, mgr, api, logger)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
	}

}
