// Command scout is the Comeback Scout terminal watcher.
//
// Usage:
//
//	scout watch
//	scout watch --notify
//	scout matches
//	scout alerts
//	scout check
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/comebackscout/comeback-scout/internal/config"
	"github.com/comebackscout/comeback-scout/internal/notify"
	"github.com/comebackscout/comeback-scout/internal/scout"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "scout",
		Short: "Comeback Scout watcher CLI",
	}

	root.AddCommand(watchCmd())
	root.AddCommand(matchesCmd())
	root.AddCommand(alertsCmd())
	root.AddCommand(checkCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// watch command
// --------------------------------------------------------------------------

func watchCmd() *cobra.Command {
	var wantNotify bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll live matches and comeback alerts until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, client *scout.Client) error {
				perm := &notify.Permission{}
				toasts := notify.NewToaster(logger)
				desktop := notify.NewDesktop(logger)

				// --notify is the user gesture that resolves the permission
				// prompt. Without it the permission stays unrequested and OS
				// notifications are suppressed; toasts fire regardless.
				if wantNotify {
					state := perm.Request(desktop != nil)
					toasts.Push("info", "Notification permission "+state.String())
				}

				watcher := scout.NewWatcher(client, perm, toasts, desktop, scout.Options{
					MatchInterval: cfg.MatchPollInterval,
					AlertInterval: cfg.AlertPollInterval,
				}, logger)

				logger.Info("Watching for comebacks",
					"api", cfg.ScoutBaseURL,
					"match_interval", cfg.MatchPollInterval,
					"alert_interval", cfg.AlertPollInterval,
					"permission", perm.State().String())
				watcher.Run(ctx)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&wantNotify, "notify", false, "Request OS notification permission")
	return cmd
}

// --------------------------------------------------------------------------
// one-shot commands
// --------------------------------------------------------------------------

func matchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matches",
		Short: "Print the current live-match slate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, client *scout.Client) error {
				matches, err := client.LiveMatches(ctx)
				if err != nil {
					return err
				}
				for _, m := range matches {
					marker := "  "
					if m.IsComebackScenario {
						marker = "⚡ "
					}
					fmt.Printf("%s%s %d-%d %s  %d'  comeback %.0f%%\n",
						marker, m.HomeTeam.Name, m.HomeTeam.Score,
						m.AwayTeam.Score, m.AwayTeam.Name,
						m.Minute, m.ComebackProbability)
				}
				return nil
			})
		},
	}
}

func alertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Print current comeback alerts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, client *scout.Client) error {
				alerts, err := client.Alerts(ctx)
				if err != nil {
					return err
				}
				if len(alerts) == 0 {
					fmt.Println("no alerts")
					return nil
				}
				for _, a := range alerts {
					read := " "
					if a.Read {
						read = "✓"
					}
					fmt.Printf("[%s] %s vs %s %s  %.0f%% at %d'  %s\n",
						read, a.TeamName, a.Opponent, a.Score,
						a.Probability, a.Minute, a.Reason)
				}
				return nil
			})
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Trigger a comeback recomputation on the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, client *scout.Client) error {
				start := time.Now()
				created, err := client.CheckComebacks(ctx)
				if err != nil {
					return err
				}
				logger.Info("Comeback check finished",
					"alerts_created", created,
					"duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// run handles config loading, client construction, and context cancellation.
func run(fn func(ctx context.Context, cfg *config.Config, client *scout.Client) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client := scout.NewClient(cfg.ScoutBaseURL, cfg.ScoutRateLimit, logger)
	return fn(ctx, cfg, client)
}
