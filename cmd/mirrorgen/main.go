package main

import (
	"errors"
	"os"

	"github.com/dawnmagnet/mirrorgen/internal/cli"
	"github.com/dawnmagnet/mirrorgen/internal/models"
	"github.com/sirupsen/logrus"
)

func main() {
	// Setup logging format
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)

		var genErr *models.GenError
		if errors.As(err, &genErr) {
			os.Exit(genErr.Type.ExitCode())
		}
		os.Exit(1)
	}
}
