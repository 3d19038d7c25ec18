// @title         wallet-service API
// @version       1.0
// @description   Выпуск ссылок "сохранить в Google Wallet" для билетов.
// @BasePath      /
// @schemes       http
// @host          localhost:8081
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	_ "github.com/vbncursed/vkr/wallet-service/docs"
	"github.com/vbncursed/vkr/wallet-service/internal/bootstrap"
	icfg "github.com/vbncursed/vkr/wallet-service/internal/config"
	ih "github.com/vbncursed/vkr/wallet-service/internal/http"
	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

func main() {
	cfg := icfg.Load()
	icfg.SetupLogging(cfg.LogLevel, cfg.LogFormat)
	if cfg.IssuerID == "" {
		log.Fatal("ISSUER_ID is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cred, pool, err := bootstrap.Credential(ctx, cfg)
	if err != nil {
		log.Fatalf("credentials: %v", err)
	}
	var pinger ih.Pinger
	if pool != nil {
		defer pool.Close()
		pinger = pool
	}

	reg, err := bootstrap.Registry(ctx, cfg, cred)
	if err != nil {
		log.Fatalf("registry: %v", err)
	}

	svc := issvc.New(reg, cred, issvc.RealClock{}, issvc.JWTSigner{}, bootstrap.ServiceOptions(cfg))
	e := ih.Router(svc, pinger, cfg)

	srv := &http.Server{
		Addr:              cfg.Bind,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("wallet-service listening on %s", cfg.Bind)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(shutdownCtx)
}
