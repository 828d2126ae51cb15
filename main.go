package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	tea "github.com/charmbracelet/bubbletea"

	"fitdash/internal/auth"
	"fitdash/internal/calendar"
	"fitdash/internal/config"
	"fitdash/internal/hevy"
	"fitdash/internal/service"
	"fitdash/internal/store"
	"fitdash/internal/strava"
	"fitdash/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("You need to add your Hevy API key and Strava API credentials.")
		fmt.Println("Hevy:   https://hevy.com/settings?developer")
		fmt.Println("Strava: https://www.strava.com/settings/api")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Subcommands that don't launch the TUI
	if len(os.Args) > 1 {
		return runCommand(db, os.Args[1], os.Args[2:])
	}

	hevyClient := hevy.NewClient(cfg.Hevy.APIKey)

	// Strava is optional: without stored tokens runs simply aren't synced.
	// Tokens are granted elsewhere and seeded with 'fitdash strava-token'.
	stravaClient, err := newStravaClient(db, cfg)
	if err != nil {
		return err
	}
	if stravaClient == nil {
		fmt.Println("No Strava tokens stored; run sync will be skipped.")
		fmt.Println("Seed them with: fitdash strava-token <access> <refresh> <expires-unix>")
	}

	// Create services
	syncSvc := service.NewSyncService(hevyClient, stravaClient, db)
	querySvc := service.NewQueryService(db, cfg.Analysis.WindowWeeks)
	session := calendar.NewSession(db, cfg.Calendar.Owner)

	// Launch TUI. Mouse motion reporting is needed for calendar drags.
	app := tui.NewApp(db, syncSvc, querySvc, session)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// newStravaClient builds a Strava client from stored tokens, refreshing them
// through the store as they rotate. Returns nil when no tokens are stored.
func newStravaClient(db *store.DB, cfg *config.Config) (*strava.Client, error) {
	tokens, err := db.GetStravaTokens()
	if errors.Is(err, store.ErrNoTokens) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading Strava tokens: %w", err)
	}

	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.Strava.ClientID,
		ClientSecret: cfg.Strava.ClientSecret,
	})

	token := &oauth2.Token{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Expiry:       tokens.ExpiresAt,
	}

	tokenSource := auth.NewTokenSource(oauthCfg, token, func(newToken *oauth2.Token) error {
		return db.UpdateStravaTokens(newToken.AccessToken, newToken.RefreshToken, newToken.Expiry)
	})

	return strava.NewClient(tokenSource), nil
}

func runCommand(db *store.DB, command string, args []string) error {
	switch command {
	case "import":
		if len(args) != 1 {
			return errors.New("usage: fitdash import <measurements.json>")
		}
		n, err := service.ImportMeasurements(db, args[0])
		if err != nil {
			return fmt.Errorf("importing measurements: %w", err)
		}
		fmt.Printf("Imported %d measurements.\n", n)
		return nil

	case "strava-token":
		if len(args) != 3 {
			return errors.New("usage: fitdash strava-token <access> <refresh> <expires-unix>")
		}
		return seedStravaTokens(db, args[0], args[1], args[2])

	default:
		return fmt.Errorf("unknown command %q (expected 'import' or 'strava-token')", command)
	}
}

func seedStravaTokens(db *store.DB, access, refresh, expiresUnix string) error {
	expires, err := strconv.ParseInt(expiresUnix, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing expiry %q: %w", expiresUnix, err)
	}

	tokens := &store.StravaTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Unix(expires, 0),
	}
	if err := db.SaveStravaTokens(tokens); err != nil {
		return fmt.Errorf("saving Strava tokens: %w", err)
	}

	fmt.Println("Strava tokens stored.")
	return nil
}
