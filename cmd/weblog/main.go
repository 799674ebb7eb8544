package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	adapthttp "weblog/internal/adapter/http"
	"weblog/internal/adapter/postgres"
	"weblog/internal/app"
	"weblog/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	authSvc := app.NewAuthService(db, postgres.NewSessionRepo(db))
	postSvc := app.NewPostService(postgres.NewPostRepo(db))

	oidcCfg, err := adapthttp.NewOIDC(context.Background(), cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
	if err != nil {
		log.Fatalf("oidc setup: %v", err)
	}

	h := adapthttp.New(authSvc, postSvc, oidcCfg).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
