package main

import (
	"clinic-records/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to start clinic records API")
	}

	// Blocks until SIGINT or SIGTERM
	app.Run()
}
