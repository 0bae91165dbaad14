package main

import "github.com/adanyl0v/go-tasks-api/internal/app"

func main() {
	logger := app.NewDefaultLogger()
	cfg := app.MustReadEnv(logger)
	logger = app.MustInitApplicationLogger(logger, cfg.Env)

	db := app.MustConnectPostgres(logger, cfg.Database)
	defer app.DisconnectPostgres(logger, db)

	app.MustListenAndServeHTTP(logger, cfg, db)
}
