// planservd hosts the electrical design engine as a standalone stateless
// HTTP service for deployments that don't want the full CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"circuit-planner/internal/service"
	"circuit-planner/internal/symbol"
	"circuit-planner/internal/version"
)

func main() {
	addr := flag.String("addr", envOr("PLANSERVD_ADDR", ":8420"), "listen address")
	symbols := flag.String("symbols", os.Getenv("PLANSERVD_SYMBOLS"), "symbol registry JSON file")
	debug := flag.Bool("debug", false, "verbose request logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	var log *zap.Logger
	var err error
	if *debug {
		log, err = zap.NewDevelopment()
	} else {
		gin.SetMode(gin.ReleaseMode)
		log, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	var reg *symbol.Registry
	if *symbols != "" {
		if reg, err = symbol.Load(*symbols); err != nil {
			log.Fatal("load symbols", zap.String("path", *symbols), zap.Error(err))
		}
	}

	log.Info("starting", zap.String("addr", *addr), zap.String("version", version.Version))
	if err := service.New(log, reg).Router().Run(*addr); err != nil {
		log.Fatal("serve", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
