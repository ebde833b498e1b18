package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logDebug   bool
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "hashdict",
		Short:         "Exercise the chained, open addressing and tree maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			configureLogger(opts.logDebug)
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.logDebug, "log-debug", "d", false, "Enable debug logs")
	cmd.PersistentFlags().StringVarP(&opts.configFile, "conf", "f", "", "Config file (yaml)")
	cmd.AddCommand(newChainedCmd(opts))
	cmd.AddCommand(newOpenCmd(opts))
	cmd.AddCommand(newTreeCmd(opts))
	cmd.AddCommand(newDemoCmd())
	return cmd
}

func configureLogger(debug bool) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func Execute() error {
	return newRootCmd().Execute()
}
