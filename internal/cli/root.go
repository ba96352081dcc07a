package cli

import (
	"fmt"
	"strings"

	"github.com/dawnmagnet/mirrorgen/internal/distro"
	"github.com/dawnmagnet/mirrorgen/internal/models"
	"github.com/dawnmagnet/mirrorgen/internal/recipe"
	"github.com/dawnmagnet/mirrorgen/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		outPath  string
		mirror   string
		toStdout bool
	)

	rootCmd := &cobra.Command{
		Use:   "mirrorgen <distro>:<version>",
		Short: "Generate a Dockerfile that rewrites yum/dnf repos to CN mirrors",
		Long: `Mirrorgen renders a Dockerfile for a RHEL-derivative base image whose
package repositories point at regional mirror hosts instead of the
upstream origin. The result is printed or written to disk; nothing is
built or executed.

Supported distros:
  ` + strings.Join(distro.Names(), ", "),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, version, err := distro.ParseReference(args[0])
			if err != nil {
				return err
			}

			cfg, err := distro.Lookup(name)
			if err != nil {
				return err
			}
			logrus.Debugf("Configuration: %+v", cfg)

			dockerfile := recipe.Render(cfg, name, version, mirror)

			if toStdout {
				fmt.Fprint(cmd.OutOrStdout(), dockerfile)
				return nil
			}

			if outPath == "" {
				outPath = fmt.Sprintf("./%s-%s.Dockerfile", name, version)
			}
			if err := utils.WriteFile(outPath, []byte(dockerfile), 0644); err != nil {
				return &models.GenError{
					Type: models.ErrOutputWrite,
					Err:  fmt.Errorf("writing %s: %w", outPath, err),
				}
			}
			logrus.Infof("Dockerfile written to: %s", outPath)

			return nil
		},
	}

	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output Dockerfile path (default ./<distro>-<version>.Dockerfile)")
	rootCmd.Flags().StringVarP(&mirror, "mirror", "m", "", "Mirror base URL to use instead of the built-in one")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "Print to stdout instead of writing a file")

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	return rootCmd
}
