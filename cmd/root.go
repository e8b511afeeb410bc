package cmd

import (
	"context"

	"github.com/spf13/cobra"

	createvite "github.com/Canyonmnmn/create-vite/pkg"
)

const (
	templateFlag  = "template"
	templatesFlag = "templates"
	verboseFlag   = "verbose"
	configFlag    = "config"
)

func newRootCmd(result *createvite.Result, extra ...createvite.Option) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "create-vite [target-dir]",
		Short: "Scaffold a new Vite project",
		Long: `create-vite creates a new project in target-dir from one of the bundled
templates, or hands over to the framework's own generator.`,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			template, err := cmd.Flags().GetString(templateFlag)
			if err != nil {
				return err
			}

			opts := []createvite.Option{
				createvite.WithTemplate(template),
				createvite.WithTemplates(cfg.Templates),
				createvite.WithUserAgent(cfg.UserAgent),
				createvite.WithOutput(cmd.OutOrStdout()),
				createvite.WithLogger(newLogger(cmd.ErrOrStderr(), cfg.Verbose)),
			}
			if len(args) > 0 {
				opts = append(opts, createvite.WithTargetDir(args[0]))
			}

			res, err := createvite.NewCreateVite(append(opts, extra...)...).Scaffold(cmd.Context())
			*result = res
			return err
		},
	}

	rootCmd.Flags().StringP(templateFlag, "t", "", "use the named template")
	rootCmd.Flags().String(templatesFlag, "", "directory or git URL holding template-<name> directories")
	rootCmd.Flags().BoolP(verboseFlag, "v", false, "log every file created")
	rootCmd.Flags().String(configFlag, "", "config file (default $HOME/.create-vite.toml)")
	return rootCmd
}

// Execute executes the root command and reports how the run ended.
func Execute(ctx context.Context) (createvite.Result, error) {
	var result createvite.Result
	err := newRootCmd(&result).ExecuteContext(ctx)
	return result, err
}
