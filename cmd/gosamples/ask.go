package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jchmurny/gosamples/internal/assistant"
	"github.com/jchmurny/gosamples/internal/spinner"
)

const defaultPrompt = "Do you believe this is my first API request using OpenAI?"

// askCmd sends a prompt to an OpenAI-compatible chat API.
var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Ask an OpenAI-compatible chat model a question",
	Long: `Send a prompt to an OpenAI-compatible chat completion API and print
the answer.

The API key is read from the OPENAI_API_KEY environment variable, or
from a .env file in the working directory if present. Model, role, and
API base URL come from the config file.

Example:
  gosamples ask -c assistant.yaml
  gosamples ask -c assistant.yaml "Explain goroutines in one sentence"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = askCmd.MarkFlagRequired("config")
}

func runAsk(cmd *cobra.Command, args []string) error {
	// a missing .env file is fine, the variable may be set directly
	_ = godotenv.Load()

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := assistant.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	prompt := defaultPrompt
	if len(args) == 1 {
		prompt = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	spinCtx, cancel := context.WithCancel(ctx)
	spin := spinner.New(os.Stdout, "waiting for the model...")
	spin.Start(spinCtx)

	answer, err := assistant.New(cfg).Ask(ctx, prompt)
	cancel()
	spin.Wait()
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}
