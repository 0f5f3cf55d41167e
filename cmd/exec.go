package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tuannh982/linked-stack/utils/collections"

	log "github.com/sirupsen/logrus"
)

const popOp = "pop"

var ErrInvalidOp = errors.New("invalid op")

func init() {
	rootCmd.AddCommand(execCmd)
}

var execCmd = &cobra.Command{
	Use:     "exec [op...]",
	Short:   "Apply a sequence of ops to a new stack",
	Long:    `Each integer op pushes that value, each "pop" op pops the top value.`,
	Example: "  linkedstack exec 1 2 pop 3 pop pop pop",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := parseOps(args)
		if err != nil {
			return err
		}
		s := collections.NewLinkedStack()
		defer s.Drop()
		applyOps(newLogger(cmd), s, ops)
		return nil
	},
}

// op is a push of value, or a pop when pop is set.
type op struct {
	pop   bool
	value int32
}

func parseOps(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, arg := range args {
		if arg == popOp {
			ops = append(ops, op{pop: true})
			continue
		}
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidOp, arg, err)
		}
		ops = append(ops, op{value: int32(v)})
	}
	return ops, nil
}

// applyOps runs ops against s and returns what each pop produced.
func applyOps(logger *log.Entry, s *collections.LinkedStack, ops []op) []string {
	results := make([]string, 0)
	for _, o := range ops {
		if !o.pop {
			s.Push(o.value)
			logger.Debug("push ", o.value)
			continue
		}
		v, ok := s.Pop()
		if !ok {
			logger.Info("pop: empty")
			results = append(results, "none")
			continue
		}
		logger.Info("pop: ", v)
		results = append(results, strconv.FormatInt(int64(v), 10))
	}
	return results
}
