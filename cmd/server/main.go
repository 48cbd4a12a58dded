package main

import (
	"flag"
	"fmt"
	"net/http"

	"taskboard/config"
	"taskboard/global"
	"taskboard/initialize"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to yaml config")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build app")
	}
	initialize.SetLogLevel(app.Cfg.LogLevel)

	// Live log-level adjustment on config edits.
	if err := config.Watch(*configPath, func(cfg *config.Config) {
		initialize.SetLogLevel(cfg.LogLevel)
		global.Logger.Info().Str("level", cfg.LogLevel).Msg("config reloaded")
	}); err != nil {
		global.Logger.Warn().Err(err).Msg("config watch disabled")
	}

	addr := fmt.Sprintf("%s:%d", app.Cfg.HTTP.Host, app.Cfg.HTTP.Port)
	global.Logger.Info().Str("addr", addr).Msg("server listening")
	if err := http.ListenAndServe(addr, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
