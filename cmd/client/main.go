// Command client is a one-shot smoke test for a running items-api server.
// It registers an account (tolerating an already-registered email), logs in,
// creates an item, lists and fetches it back, and prints every step.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/items-api/internal/adapter"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/models"
)

func main() {
	address := flag.String("a", "http://localhost:8080", "base URL of the items-api server")
	email := flag.String("email", "smoke-test@example.com", "account email")
	password := flag.String("password", "secret123", "account password")
	timeout := flag.Duration("timeout", 15*time.Second, "per-request timeout")
	flag.Parse()

	log := logger.NewLogger("items-client")

	client, err := adapter.NewHTTPAPIClient(adapter.HTTPClientConfig{
		BaseURL: *address,
		Timeout: *timeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	if err := run(context.Background(), client, *email, *password); err != nil {
		log.Err(err).Msg("smoke test failed")
		os.Exit(1)
	}

	fmt.Println("all steps passed")
}

func run(ctx context.Context, client adapter.APIClient, email, password string) error {
	credentials := models.Credentials{Email: email, Password: password}

	user, err := client.Register(ctx, credentials)
	switch {
	case err == nil:
		fmt.Printf("registered user id=%d email=%s\n", user.ID, user.Email)
	case errors.Is(err, adapter.ErrConflict):
		fmt.Printf("account %s already registered, continuing\n", email)
	default:
		return fmt.Errorf("register: %w", err)
	}

	tokenResponse, err := client.Login(ctx, credentials)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Printf("logged in as user id=%d\n", tokenResponse.User.ID)

	description := "created by the smoke-test client"
	created, err := client.CreateItem(ctx, models.ItemCreate{
		Name:        fmt.Sprintf("Smoke Test Item %s", time.Now().Format("20060102_150405")),
		Description: &description,
	})
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	fmt.Printf("created item id=%d name=%q\n", created.ID, created.Name)

	items, err := client.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	fmt.Printf("listed %d item(s)\n", len(items))

	fetched, err := client.GetItem(ctx, created.ID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	fmt.Printf("fetched item id=%d name=%q\n", fetched.ID, fetched.Name)

	// a missing id must come back as a clean not-found
	if _, err := client.GetItem(ctx, 99999999); !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("expected not-found for missing item, got: %v", err)
	}
	fmt.Println("missing item correctly reported as not found")

	return nil
}
