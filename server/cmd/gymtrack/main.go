package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gymtrack/gymtrack-web/client"
	"github.com/gymtrack/gymtrack-web/pkg/session"
)

var apiURL string
var sessionFile string
var debug bool

const requestTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gymtrack",
		Short:         "Command-line client for the GymTrack API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", getEnv("GYMTRACK_API_URL", "http://localhost:8000"), "Base URL of the GymTrack API")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", getEnv("GYMTRACK_SESSION_FILE", ""), "Session file holding the auth token (default: user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Log every HTTP request and response")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newGymsCmd())
	rootCmd.AddCommand(newEquipmentCmd())
	rootCmd.AddCommand(newEquipmentTypesCmd())
	rootCmd.AddCommand(newExercisesCmd())
	rootCmd.AddCommand(newWorkoutsCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newPostCmd())

	return rootCmd
}

// openSession opens the session file named by --session-file, or the default one.
func openSession() (*session.Session, error) {
	path := sessionFile
	if path == "" {
		p, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	log.Debug().Str("session_file", path).Msg("using session")
	return session.New(session.NewFileStore(path)), nil
}

// newClient builds an API client authenticated from the session file.
func newClient() (*client.Client, error) {
	sess, err := openSession()
	if err != nil {
		return nil, err
	}
	return client.New(apiURL,
		client.WithLogger(log.Logger),
		client.WithCredentials(sess),
		client.WithDebugLogging(debug),
	)
}

// withClient runs fn with a fresh client and a bounded context, then prints
// its result as indented JSON.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) (any, error)) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	start := time.Now()
	out, err := fn(ctx, c)
	log.Debug().Str("command", cmd.CommandPath()).Dur("elapsed", time.Since(start)).Msg("request completed")
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	if raw, ok := v.(json.RawMessage); ok {
		var anyv any
		if err := json.Unmarshal(raw, &anyv); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		v = anyv
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
