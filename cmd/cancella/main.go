package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/valmirmacedo/cancella-cli/cmd/commands"
	"github.com/valmirmacedo/cancella-cli/internal/cli"
	"github.com/valmirmacedo/cancella-cli/pkg/api"
	"github.com/valmirmacedo/cancella-cli/pkg/config"
	"github.com/valmirmacedo/cancella-cli/pkg/models"
	"github.com/valmirmacedo/cancella-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "cancella",
	Short: "Terminal client for condominium management",
	Long: `Cancella is a terminal client for the condominium management
backend: visitors, reservations, notices, packages, shared spaces,
teams and service companies. Run without arguments for the interactive
TUI, or use the subcommands for scripting.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Read()
		if err != nil {
			return err
		}
		if settings.API.Token == "" {
			fmt.Fprintf(os.Stderr, "Aviso: nenhum token configurado.\n")
			fmt.Fprintf(os.Stderr, "Execute 'cancella init' e preencha o token em %s\n", configPath())
		}

		client := api.New(settings.API.BaseURL, settings.API.Token)
		app := tui.NewApp(client, settings)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long:  `Creates ~/.cancella/config.yaml with the default settings. An existing file is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			cli.PrintInfo("Configuração já existe em %s", path)
			return nil
		}

		if err := config.Write(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to write configuration: %w", err)
		}

		cli.PrintSuccess("Configuração criada em %s", path)
		cli.PrintInfo("Edite o arquivo e preencha api.base_url e api.token")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Cancella",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Cancella version %s\n", version)
	},
}

func configPath() string {
	path, err := config.Path()
	if err != nil {
		return "~/.cancella/config.yaml"
	}
	return path
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Answer yes to confirmation prompts")
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewUpdateCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewCopyCommand())
	rootCmd.AddCommand(commands.NewCepCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
