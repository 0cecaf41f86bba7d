package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	path  string
	debug bool
}

// Execute runs the command line and exits with status 1 on any error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render(errorLine(err)))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "vivid",
		Short:         "Vivid architecture scaffolding for Laravel projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.path, "path", "p", "", "Project root (optional; autodetected from composer.json if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to storage/logs/vivid.log")

	cmd.AddCommand(
		makeDeviceCmd(opts),
		makeControllerCmd(opts),
		makeFeatureCmd(opts),
		makeJobCmd(opts),
		makeOperationCmd(opts),
		makeRequestCmd(opts),
		makePolicyCmd(opts),
		makeModelCmd(opts),
		listDevicesCmd(opts),
		listFeaturesCmd(opts),
		listDomainsCmd(opts),
		listJobsCmd(opts),
		listOperationsCmd(opts),
		findCmd(opts),
		stubsPublishCmd(opts),
		versionCmd(),
	)
	return cmd
}

// errorLine flattens err into the single line printed on stderr.
func errorLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}
