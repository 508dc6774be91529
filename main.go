package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/gamzabox/humble-line/internal/app"
	"github.com/gamzabox/humble-line/internal/config"
)

func main() {
	var (
		keyEvents bool
		prompt    string
		capacity  int
	)
	pflag.BoolVarP(&keyEvents, "keys", "k", false, "Print key events instead of editing lines (Esc quits)")
	pflag.StringVar(&prompt, "prompt", "", "Prompt shown before the input line")
	pflag.IntVar(&capacity, "history", 0, "Number of submitted lines kept for recall")
	pflag.Parse()

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to determine home directory: %v\n", err)
		os.Exit(1)
	}

	options := app.Options{
		Store:           config.NewFileStore(home),
		Input:           os.Stdin,
		Output:          os.Stdout,
		HomeDir:         home,
		Prompt:          prompt,
		HistoryCapacity: capacity,
		KeyEvents:       keyEvents,
	}

	instance, err := app.New(options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if err := instance.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "application error: %v\n", err)
		os.Exit(1)
	}
}
