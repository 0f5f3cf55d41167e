// Package cmd implements the linkedstack demo command line.
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", log.InfoLevel.String(), "Log level (debug, info, warn, error)")
}

var rootCmd = &cobra.Command{
	Use:           "linkedstack",
	Short:         "Drive a linked LIFO stack of int32 values",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
		log.SetLevel(level)
		return nil
	},
}

func newLogger(cmd *cobra.Command) *log.Entry {
	return log.WithFields(log.Fields{"cmd": cmd.Name()})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
