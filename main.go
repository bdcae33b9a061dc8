////////////////////////////////////////////////////////////////////////////////
// Okinoko Treasury: company, fund and service treasuries on one governance engine
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"okinoko_treasury/api"
	"okinoko_treasury/contract"
	"okinoko_treasury/sdk"
	"okinoko_treasury/store"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	var st store.State
	if cfg.DBPath != "" {
		sqliteState, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Fatalf("storage: %v", err)
		}
		defer sqliteState.Close()
		st = sqliteState
	} else {
		st = store.NewMockState()
	}

	host := sdk.NewLocalHost(log.Default())
	factory, err := contract.LoadFactory(context.Background(), st, cfg.Assets(), host)
	if err != nil {
		log.Fatalf("factory: %v", err)
	}
	log.Printf("loaded %d instances, currencies %v", len(factory.ListInstances()), factory.Currencies())

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewServer(factory, st).Handler(),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()
	log.Printf("treasury listening on %s", cfg.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
