package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var addressFlag string
	var verbose bool

	ctx := newCommandContext(&configFlag, &addressFlag, &verbose)

	rootCmd := &cobra.Command{
		Use:           "akari",
		Short:         "Control an LED controller over UDP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&addressFlag, "address", "a", "", "Device address as host:port (overrides config and MCU_ADDRESS)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	for _, cmd := range newDeviceCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newListenCommand(ctx))
	rootCmd.AddCommand(newProtocolCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
