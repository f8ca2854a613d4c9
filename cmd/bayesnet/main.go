// Package main provides the bayesnet command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
