package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.2"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔═══════════════════════════════════════════╗",
		"║   ███████╗███████╗███████╗██████╗         ║",
		"║   ██╔════╝██╔════╝██╔════╝██╔══██╗        ║",
		"║   ███████╗█████╗  █████╗  ██║  ██║        ║",
		"║   ╚════██║██╔══╝  ██╔══╝  ██║  ██║        ║",
		"║   ███████║███████╗███████╗██████╔╝ KIT    ║",
		"║   ╚══════╝╚══════╝╚══════╝╚═════╝         ║",
		"║                                           ║",
		"║   🌱 Database seeding and inspection 🌱   ║",
		"╚═══════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "seedkit",
	Short: "Seed and inspect SQL databases with synthetic data",
	Long: `
Seedkit sets up a database schema and fills it with synthetic but
schema-valid rows for testing and demos, then lets you look at what
landed: table listings, column details, per-column statistics, and
read-only queries.

Database Support:
- MySQL (including database-level charset/collation setup)
- PostgreSQL
- SQLite (embedded databases)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("seedkit version %s\n", Version)
			os.Exit(0)
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seedkit.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("seedkit.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
