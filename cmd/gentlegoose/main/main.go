package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/gentlegoose/cmd/gentlegoose"
	"github.com/arthur-debert/gentlegoose/pkg/ui/styles"
)

func main() {
	// A clean interrupt exits with the conventional 128+SIGINT code
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		fmt.Fprintln(os.Stderr, "\nInterrupted.")
		os.Exit(130)
	}()

	rootCmd := gentlegoose.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
