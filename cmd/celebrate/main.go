// Command celebrate plays a birthday celebration in the terminal
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	debug      bool
	mute       bool
	seed       int64
}

func (o *rootOptions) rand() *rand.Rand {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "celebrate",
		Short:         "Terminal birthday celebration with confetti, music and photos",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCelebrate(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default ./celebrate.yaml, then built-in)")
	flags.BoolVar(&opts.debug, "debug", false, "write JSON debug log to logs/celebrate.log")
	flags.BoolVar(&opts.mute, "mute", false, "start with audio muted")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (0 uses the clock)")

	root.AddCommand(newPlanCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "celebrate: %v\n", err)
		os.Exit(1)
	}
}
