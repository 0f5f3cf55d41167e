package cmd

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/tuannh982/linked-stack/utils/collections"

	log "github.com/sirupsen/logrus"
)

func TestParseOps(t *testing.T) {
	ops, err := parseOps([]string{"1", "pop", "-2147483648", "2147483647"})
	require.Nil(t, err)
	require.Equal(t, []op{
		{value: 1},
		{pop: true},
		{value: -2147483648},
		{value: 2147483647},
	}, ops)

	_, err = parseOps([]string{"1", "push"})
	require.ErrorIs(t, err, ErrInvalidOp)
	_, err = parseOps([]string{"2147483648"})
	require.ErrorIs(t, err, ErrInvalidOp)
}

func TestApplyOpsScenario(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := collections.NewLinkedStack()
	results := applyOps(log.NewEntry(logger), s, scenarioOps)
	require.Equal(t, []string{"none", "3", "2", "5", "4", "1", "none"}, results)
	require.True(t, s.IsEmpty())
	require.Equal(t, 7, len(hook.AllEntries()))
	require.Equal(t, "pop: empty", hook.LastEntry().Message)
}

func TestBuildAndDrop(t *testing.T) {
	fill, drop := buildAndDrop(100000)
	require.GreaterOrEqual(t, int64(fill), int64(0))
	require.GreaterOrEqual(t, int64(drop), int64(0))
}

func TestCommands(t *testing.T) {
	rootCmd.SetArgs([]string{"exec", "1", "2", "pop", "pop", "pop"})
	require.Nil(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"exec", "one"})
	require.ErrorIs(t, rootCmd.Execute(), ErrInvalidOp)

	rootCmd.SetArgs([]string{"scenario"})
	require.Nil(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"drop", "-n", "10"})
	require.Nil(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"drop", "--count=-1"})
	require.ErrorIs(t, rootCmd.Execute(), ErrInvalidCount)

	rootCmd.SetArgs([]string{"scenario", "-l", "loud"})
	require.NotNil(t, rootCmd.Execute())
	logLevel = log.InfoLevel.String()
}
