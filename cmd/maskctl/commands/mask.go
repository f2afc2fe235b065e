package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
)

func formatCmd() *cobra.Command {
	var spec string

	cmd := &cobra.Command{
		Use:   "format <raw>",
		Short: "Render a stored raw value through a mask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), mask.Format(args[0], mask.Spec(spec)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&spec, "mask", "m", "", "built-in mask name or custom pattern (#, A, *)")
	_ = cmd.MarkFlagRequired("mask")
	return cmd
}

func unmaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unmask <display>",
		Short: "Strip everything but digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), mask.Unmask(args[0]))
			return nil
		},
	}
}

func applyCmd() *cobra.Command {
	var spec string

	cmd := &cobra.Command{
		Use:   "apply <typed input>",
		Short: "Canonicalize typed input as a masked field would",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mask.Spec(spec)
			field := mask.Apply(args[0], s)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "display: %s\n", field.DisplayText)
			fmt.Fprintf(out, "raw:     %s\n", field.RawValue)
			if !mask.IsBuiltin(s) {
				fmt.Fprintf(out, "note:    %q is not a built-in mask, applied as a pattern\n", spec)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&spec, "mask", "m", "", "built-in mask name or custom pattern (#, A, *)")
	_ = cmd.MarkFlagRequired("mask")
	return cmd
}

func masksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "masks",
		Short: "List built-in masks with their capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, spec := range mask.Builtins() {
				digits, bounded := mask.MaxDigits(spec)
				if !bounded {
					fmt.Fprintf(out, "%-14s unbounded\n", spec)
					continue
				}
				length, _ := mask.MaxLength(spec)
				fmt.Fprintf(out, "%-14s %2d digits, %2d chars\n", spec, digits, length)
			}
			return nil
		},
	}
}
