package main

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jchmurny/gosamples/internal/restapi"
)

const defaultBaseURL = "https://jsonplaceholder.typicode.com"

// usersCmd fetches users from a JSONPlaceholder-style REST API.
var usersCmd = &cobra.Command{
	Use:   "users [id]",
	Short: "Fetch users from a REST API",
	Long: `Fetch all users, or a single user by id, from a
JSONPlaceholder-compatible REST API and print them.

Example:
  gosamples users
  gosamples users 3
  gosamples users --base-url http://localhost:8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUsers,
}

func init() {
	rootCmd.AddCommand(usersCmd)

	usersCmd.Flags().String("base-url", defaultBaseURL, "base URL of the API")
	usersCmd.Flags().Float64("rate", 0, "requests per second limit (0 = unlimited)")
}

func runUsers(cmd *cobra.Command, args []string) error {
	baseURL, _ := cmd.Flags().GetString("base-url")
	rate, _ := cmd.Flags().GetFloat64("rate")

	opts := []restapi.Option{}
	if rate > 0 {
		opts = append(opts, restapi.WithRateLimit(rate, 1))
	}
	client, err := restapi.NewClient(baseURL, opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", args[0], err)
		}
		user, err := client.User(ctx, id)
		if err != nil {
			return err
		}
		fmt.Println(user)
		return nil
	}

	users, err := client.Users(ctx)
	if err != nil {
		return err
	}
	for _, user := range users {
		fmt.Println(user)
	}
	fmt.Printf("fetched %d users from %s\n", len(users), baseURL)
	return nil
}
