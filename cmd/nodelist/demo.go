package main

import (
	"fmt"

	"github.com/mgnsk/nodelist/list"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type scenario struct {
	name string
	run  func(l *list.List[int]) error
}

var scenarios = []scenario{
	{
		name: "push-front",
		run: func(l *list.List[int]) error {
			for _, v := range []int{2, 3, 12} {
				if err := l.PushFront(v); err != nil {
					return err
				}
			}
			return nil
		},
	},
	{
		name: "push-at",
		run: func(l *list.List[int]) error {
			if err := l.PushFront(12); err != nil {
				return err
			}
			if err := l.PushBack(13); err != nil {
				return err
			}
			if err := l.PushBack(14); err != nil {
				return err
			}
			return l.PushAt(2, 2)
		},
	},
	{
		name: "pop-at",
		run: func(l *list.List[int]) error {
			if err := l.PushAt(12, 0); err != nil {
				return err
			}
			if err := l.PushBack(11); err != nil {
				return err
			}
			if err := l.PushFront(13); err != nil {
				return err
			}

			v, _, err := l.PopAt(2)
			if err != nil {
				return err
			}
			logger.Debug("popped", zap.Int("value", v))

			return nil
		},
	},
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the list scenarios and print each resulting list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range scenarios {
				l := list.New[int]()

				if err := s.run(l); err != nil {
					return fmt.Errorf("scenario %s: %w", s.name, err)
				}

				logger.Debug("scenario finished", zap.String("name", s.name), zap.Int("len", l.Len()))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s len=%d\n", s.name, l, l.Len())

				l.Clear()
			}

			return nil
		},
	}
}
