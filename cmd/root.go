package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "counsel",
	Short: "AWS architecture advisor for project descriptions",
	Long: `Counsel reads a plain-language project description and produces an AWS
architecture recommendation: the services to use and why, an estimated
monthly cost, a step-by-step implementation guide, and ready-to-apply
Terraform. Everything is computed locally from static rule tables; no
AWS credentials or API calls are involved.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.counsel.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	// TODO: add error return here
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.allow_anonymous", true)
	viper.SetDefault("server.rate_limit.requests", 100)
	viper.SetDefault("server.rate_limit.window_seconds", 3600)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".counsel")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}
