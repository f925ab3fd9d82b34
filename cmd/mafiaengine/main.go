// Command mafiaengine runs one Mafia-style match to completion and writes
// its round/summary files under --logs-dir. It uses github.com/spf13/cobra
// and pflag for a flat, subcommand-less CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mafiaengine/internal/config"
	"mafiaengine/internal/engine"
	"mafiaengine/internal/logging"
	"mafiaengine/internal/mafiaerr"
)

func main() {
	os.Exit(run())
}

// run builds the root command, executes it, and maps the outcome to an
// exit code: 0 success, 1 configuration error, 2 runtime exception. Kept
// separate from main so os.Exit never short-circuits deferred cleanup
// inside RunE.
func run() int {
	cfg := config.Defaults()

	root := &cobra.Command{
		Use:           "mafiaengine",
		Short:         "Run a discrete-turn Mafia-style social deduction match",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(cfg); err != nil {
				return mafiaerr.Config("load_env", err)
			}
			if configPath, _ := cmd.Flags().GetString("yaml"); configPath != "" {
				warnings, err := config.LoadFile(configPath, cfg)
				for _, w := range warnings {
					fmt.Fprintf(cmd.ErrOrStderr(), "config: %s\n", w)
				}
				if err != nil {
					return mafiaerr.Config("load_file", err)
				}
			}
			config.ApplyFlags(cfg, cmd.Flags())
			if err := cfg.Validate(); err != nil {
				return mafiaerr.Config("validate", err)
			}

			sink, closer, err := logging.NewSink(os.Stdout, "", cfg.Log == config.LogFull)
			if err != nil {
				return mafiaerr.Invariant("logging_init", err)
			}
			defer closer()

			eng, err := engine.New(cfg, sink, os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
			if err := eng.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	flags := root.Flags()
	flags.Int("n", cfg.NPlayers, "number of players")
	flags.Uint64("seed", cfg.Seed, "global RNG seed (0 = OS entropy)")
	flags.Bool("human", cfg.Human, "give one seat to an interactive console player")
	flags.String("log", string(cfg.Log), "log verbosity: short|full")
	flags.Bool("open", cfg.OpenAnnouncements, "open announcements (accepted; currently has no effect on play or logs)")
	flags.String("logs-dir", cfg.LogsDir, "directory for round_<N>.txt and summary.txt")
	flags.String("tie", string(cfg.Tie), "day-vote tie policy: none|random")
	flags.Int("k-mafia-div", cfg.KMafiaDiv, "mafia count = max(1, n_players / max(3, k_mafia_div))")
	flags.Int("exec", cfg.ExecutionerCount, "executioner seats (0 or 1)")
	flags.Int("journ", cfg.JournalistCount, "journalist seats (0 or 1)")
	flags.Int("ears", cfg.EavesdropperCount, "eavesdropper seats (0 or 1)")
	flags.String("yaml", "", "path to a flat key/value config file")
	flags.Bool("coro", cfg.UseCoroutines, "use the cooperative single-threaded backend")

	if err := root.Execute(); err != nil {
		var merr *mafiaerr.Error
		if errors.As(err, &merr) && merr.Kind == mafiaerr.KindConfig {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return 0
}
