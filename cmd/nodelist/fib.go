package main

import (
	"fmt"
	"strconv"

	"github.com/mgnsk/nodelist/sorting"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFibCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "fib [n]",
		Short: "Compute the n-th Fibonacci number, counting from F(0) = F(1) = 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid n %q: %w", args[0], err)
			}

			var result uint64

			switch method {
			case "recursive":
				result = sorting.Fibonacci(n)
			case "iter":
				result = sorting.FibonacciIter(n)
			case "pair":
				result, _ = sorting.FibonacciPair(n)
			case "memo":
				result = sorting.FibonacciMemo(n)
			default:
				return fmt.Errorf("unknown method %q", method)
			}

			logger.Debug("computed fibonacci", zap.String("method", method), zap.Int("n", n))
			fmt.Fprintln(cmd.OutOrStdout(), result)

			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "iter", "method: recursive, iter, pair or memo")

	return cmd
}
