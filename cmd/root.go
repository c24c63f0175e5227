package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"consolidator/pkg/consolidate"
)

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	src        string
	output     string
	configPath string
	debug      bool
}

// NewRootCmd builds the command tree. Running it without arguments
// consolidates ./src into ./consolidated.txt.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "consolidator",
		Short: "Flatten a source tree into a single text file",
		Long: `consolidator walks a source directory and writes every file it finds into one
output file, each wrapped in "---" markers with a "File Directory:" header
giving its path relative to the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsolidate(cmd, flags, logger)
		},
	}

	root.Flags().StringVarP(&flags.src, "src", "s", consolidate.DefaultSourceDir, "Source directory to walk")
	root.Flags().StringVarP(&flags.output, "output", "o", consolidate.DefaultOutputFile, "Output file, truncated on each run")
	root.Flags().StringVarP(&flags.configPath, "config", "c", "", "Optional .toml or .yaml config file")
	root.Flags().BoolVar(&flags.debug, "debug", false, "Enable development logging")

	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command with os.Args.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}
