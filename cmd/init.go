package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/advising-cli/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to ~/.advising/",
	Long: `Create ~/.advising/advising.yaml with the default catalog path and
subjects, plus an empty ~/.advising/.env for overrides. Existing files are
left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	return initConfig(newPrinter(cmd))
}

func initConfig(p *printer) error {
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
		p.ok("", fmt.Sprintf("Config written: %s", cfgPath))
	} else if err != nil {
		return fmt.Errorf("cannot stat config %s: %w", cfgPath, err)
	} else {
		p.skip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	envPath, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	p.ok("", fmt.Sprintf("Overrides file ready: %s", envPath))
	return nil
}
