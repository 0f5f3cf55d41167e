package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tuannh982/linked-stack/utils/collections"
)

func init() {
	rootCmd.AddCommand(scenarioCmd)
}

var scenarioOps = []op{
	{pop: true},
	{value: 1},
	{value: 2},
	{value: 3},
	{pop: true},
	{pop: true},
	{value: 4},
	{value: 5},
	{pop: true},
	{pop: true},
	{pop: true},
	{pop: true},
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Run the basic push/pop walkthrough",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := collections.NewLinkedStack()
		defer s.Drop()
		applyOps(newLogger(cmd), s, scenarioOps)
	},
}
