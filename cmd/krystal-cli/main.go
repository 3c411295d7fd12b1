// krystal-cli is a thin command line consumer of the Krystal Cloud client
// library: it parses flags, builds queries, and prints results. All request
// orchestration lives in pkg/client.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/defitools/krystal-cloud-client/pkg/client"
	"github.com/defitools/krystal-cloud-client/pkg/logging"
	"github.com/defitools/krystal-cloud-client/pkg/ratelimit"
)

var (
	flagAPIKey   string
	flagBaseURL  string
	flagVerbose  bool
	flagJSON     bool
	flagRateMax  int
	flagRateSpan time.Duration
)

func main() {
	// .env is optional; real environments set KRYSTAL_API_KEY directly.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "krystal-cli",
		Short:        "Query DeFi pools, positions, and transactions via the Krystal Cloud API",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key (defaults to KRYSTAL_API_KEY)")
	root.PersistentFlags().StringVar(&flagBaseURL, "base-url", client.DefaultBaseURL, "API base URL")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of summaries")
	root.PersistentFlags().IntVar(&flagRateMax, "rate-limit", 0, "max requests per window (0 disables client-side limiting)")
	root.PersistentFlags().DurationVar(&flagRateSpan, "rate-window", time.Second, "rate limit window duration")

	root.AddCommand(
		newChainsCmd(),
		newChainCmd(),
		newPoolsCmd(),
		newPoolCmd(),
		newPositionsCmd(),
		newPositionCmd(),
		newTransactionsCmd(),
		newProtocolsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var apiErr *client.Error
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", apiErr.Remediation())
		}
		os.Exit(1)
	}
}

// newClient builds the library client from the global flags.
func newClient() (*client.Client, error) {
	level := logging.LevelWarn
	if flagVerbose {
		level = logging.LevelDebug
	}
	logging.Setup(logging.Config{Level: level, Pretty: true, Output: os.Stderr})

	apiKey := flagAPIKey
	if apiKey == "" {
		apiKey = os.Getenv(client.EnvAPIKey)
	}

	cfg := client.DefaultConfig()
	cfg.BaseURL = flagBaseURL
	if flagRateMax > 0 {
		cfg.Gate = ratelimit.NewWindowGate(ratelimit.NewWindow(flagRateMax, flagRateSpan))
	}

	return client.NewWithConfig(apiKey, cfg)
}

// printJSON renders any value as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
