// Command walletctl prints WalletWise budget, trend and savings reports in
// the terminal and allocates funds to savings goals.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"walletwise/internal/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "walletctl",
		Short: "WalletWise from the command line",
		Long: `walletctl fetches budgets and transactions from a WalletWise API and
reports spending for the current week, month or year.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/walletctl/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "http://localhost:5000", "WalletWise API base URL")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "HTTP request timeout")

	_ = viper.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("api.timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(trendsCmd())
	rootCmd.AddCommand(savingsCmd())
	rootCmd.AddCommand(allocateCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		viper.AddConfigPath(home + "/.config/walletctl")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// WALLETCTL_API_URL, WALLETCTL_API_TIMEOUT
	viper.SetEnvPrefix("WALLETCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func newClient() *client.Client {
	return client.New(viper.GetString("api.url"), &http.Client{Timeout: viper.GetDuration("api.timeout")})
}
