package main

import (
	"context"
	"hotelclient/config"
	"hotelclient/internal/domains/booking/service"
	"hotelclient/shared/logger"
	"os"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	cli := command{
		service: service.New(cfg),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}

	os.Exit(cli.execute(context.Background(), os.Args[1:]))
}
