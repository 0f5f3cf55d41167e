package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"github.com/tuannh982/linked-stack/utils/collections"

	log "github.com/sirupsen/logrus"
)

const DefaultDropCount = 1000000

var ErrInvalidCount = errors.New("count must not be negative")

var dropCount int

func init() {
	rootCmd.AddCommand(dropCmd)
	dropCmd.Flags().IntVarP(&dropCount, "count", "n", DefaultDropCount, "Number of values to push before dropping")
}

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Build a long chain and tear it down",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dropCount < 0 {
			return ErrInvalidCount
		}
		fill, drop := buildAndDrop(dropCount)
		newLogger(cmd).WithFields(log.Fields{
			"count": dropCount,
			"fill":  fill,
			"drop":  drop,
		}).Info("chain dropped")
		return nil
	},
}

func buildAndDrop(n int) (fill, drop time.Duration) {
	start := time.Now()
	s := collections.NewLinkedStack()
	for i := 0; i < n; i++ {
		s.Push(int32(i))
	}
	fill = time.Since(start)
	start = time.Now()
	s.Drop()
	drop = time.Since(start)
	return fill, drop
}
