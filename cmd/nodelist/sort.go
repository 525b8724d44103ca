package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mgnsk/nodelist/sorting"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSortCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "sort [numbers...]",
		Short: "Sort integers with bubble, merge or quick sort",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", arg, err)
				}
				values = append(values, v)
			}

			switch algorithm {
			case "bubble":
				sorting.BubbleSort(values)
			case "merge":
				values = sorting.MergeSort(values)
			case "quick":
				sorting.QuickSort(values)
			default:
				return fmt.Errorf("unknown algorithm %q", algorithm)
			}

			logger.Debug("sorted", zap.String("algorithm", algorithm), zap.Int("count", len(values)))

			out := make([]string, len(values))
			for i, v := range values {
				out[i] = strconv.Itoa(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))

			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "quick", "sorting algorithm: bubble, merge or quick")

	return cmd
}
