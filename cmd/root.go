// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/Work-Fort/GpgAssist/cmd/build"
	"github.com/Work-Fort/GpgAssist/cmd/cmdutil"
	"github.com/Work-Fort/GpgAssist/cmd/compose"
	configCmd "github.com/Work-Fort/GpgAssist/cmd/config"
	"github.com/Work-Fort/GpgAssist/cmd/list"
	"github.com/Work-Fort/GpgAssist/cmd/show"
	"github.com/Work-Fort/GpgAssist/cmd/version"
	"github.com/Work-Fort/GpgAssist/pkg/config"
	"github.com/Work-Fort/GpgAssist/pkg/ui"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	// -ldflags "-X github.com/Work-Fort/GpgAssist/cmd.Version=x.y.z"
	Version string

	logLevel     string
	useTUI       bool
	quote        string
	gnupgVersion string
)

var rootCmd = &cobra.Command{
	Use:   "gpgassist",
	Short: "Build gpg command lines without reading the man page",
	Long: `gpgassist - build gpg command lines without reading the man page

Pick what you want to do with GnuPG, answer a few questions and get the
exact gpg command to run. Started in a terminal it opens the interactive
composer; 'gpgassist build' does the same from flags for scripts.

gpgassist never runs gpg itself. It only prints the command.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize directories before any command runs
		if err := config.InitDirs(); err != nil {
			return err
		}

		// Load config files now that directories exist
		if err := config.LoadConfig(); err != nil {
			return err
		}

		// Update flag values from Viper (respects config file and env vars)
		useTUI = config.GetUseTUI()
		logLevel = config.GetLogLevel()

		return setupLogging(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmdutil.IsInteractive() {
			return cmd.Help()
		}

		synth, err := cmdutil.Synthesizer()
		if err != nil {
			return err
		}

		line, err := compose.Run(synth)
		if err != nil {
			return err
		}
		if line != "" {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

// setupLogging sends the default logger to the JSON debug log at level
func setupLogging(level string) error {
	// Handle disabled logging first
	if level == "disabled" {
		// Disable all logging
		log.SetOutput(io.Discard)
		return nil
	}

	// Configure log level from flag
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.DebugLevel // Default to debug
	}

	// Always log to file in JSON format
	f, err := os.OpenFile(config.GlobalPaths.DebugLogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// Create file logger with JSON formatting
	debugLogger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02T15:04:05.000Z07:00",
		Level:           parsed,
		ReportCaller:    true,
		Formatter:       log.JSONFormatter,
	})

	// Set as default logger
	log.SetDefault(debugLogger)

	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Print error with styling
		theme := config.CurrentTheme
		errorStyle := theme.ErrorStyle()
		fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("Error:"), err.Error())
		os.Exit(1)
	}
}

func init() {
	// Configure logging - will be redirected to file in PersistentPreRunE
	log.SetReportTimestamp(false)
	log.SetLevel(log.InfoLevel)

	// Initialize Viper configuration
	config.InitViper()

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "debug", "Log level: disabled, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&useTUI, "use-tui", true, "Open the composer when running in a terminal")
	rootCmd.PersistentFlags().StringVar(&quote, "quote", "none", "Quoting of file names and ids: none, shell")
	rootCmd.PersistentFlags().StringVar(&gnupgVersion, "gnupg-version", "", "Write commands for this GnuPG release (default: latest)")

	// Bind flags to Viper for config file and environment variable support
	if err := config.BindFlags(rootCmd.PersistentFlags()); err != nil {
		log.Fatal("failed to bind flags", "err", err)
	}

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", cobra.FixedCompletions(
		[]string{"disabled", "debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("quote", cobra.FixedCompletions(
		[]string{"none", "shell"}, cobra.ShellCompDirectiveNoFileComp))

	// Add subcommands using factory functions
	rootCmd.AddCommand(build.NewBuildCmd())
	rootCmd.AddCommand(compose.NewComposeCmd())
	rootCmd.AddCommand(configCmd.NewConfigCmd())
	rootCmd.AddCommand(list.NewListCmd())
	rootCmd.AddCommand(show.NewShowCmd())
	rootCmd.AddCommand(version.NewVersionCmd(Version))

	// Set custom help, usage, and error functions
	rootCmd.SetHelpFunc(styledHelpFunc)
	rootCmd.SetUsageFunc(styledUsageFunc)
	rootCmd.SilenceUsage = true  // Don't show usage on errors
	rootCmd.SilenceErrors = true // We'll handle error printing ourselves

	// Disable default completion and provide custom one (Linux only - no powershell)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	initCompletionCmd()
}

// initCompletionCmd creates a custom completion command for Linux shells only.
// This mirrors Cobra's default implementation from completions.go but excludes PowerShell.
func initCompletionCmd() {
	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate the autocompletion script for the specified shell",
		Long: fmt.Sprintf(`Generate the autocompletion script for %s for the specified shell.
See each sub-command's help for details on how to use the generated script.
`, rootCmd.Name()),
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
	}

	// Flags for shell-specific options
	noDesc := rootCmd.CompletionOptions.DisableDescriptions
	haveNoDescFlag := !rootCmd.CompletionOptions.DisableNoDescFlag && !rootCmd.CompletionOptions.DisableDescriptions
	shortDesc := "Generate the autocompletion script for %s"

	// Bash completion (copied from Cobra's default, Linux paths only)
	bash := &cobra.Command{
		Use:   "bash",
		Short: fmt.Sprintf(shortDesc, "bash"),
		Long: fmt.Sprintf(`Generate the autocompletion script for the bash shell.

This script depends on the 'bash-completion' package.
If it is not installed already, you can install it via your OS's package manager.

To load completions in your current shell session:

	source <(%[1]s completion bash)

To load completions for every new session, execute once:

	%[1]s completion bash > /etc/bash_completion.d/%[1]s

You will need to start a new shell for this setup to take effect.
`, rootCmd.Name()),
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		ValidArgsFunction:     cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), !noDesc)
		},
	}
	if haveNoDescFlag {
		bash.Flags().BoolVar(&noDesc, "no-descriptions", false, "disable completion descriptions")
	}

	// Zsh completion (copied from Cobra's default, Linux paths only)
	zsh := &cobra.Command{
		Use:   "zsh",
		Short: fmt.Sprintf(shortDesc, "zsh"),
		Long: fmt.Sprintf(`Generate the autocompletion script for the zsh shell.

If shell completion is not already enabled in your environment you will need
to enable it.  You can execute the following once:

	echo "autoload -U compinit; compinit" >> ~/.zshrc

To load completions in your current shell session:

	source <(%[1]s completion zsh)

To load completions for every new session, execute once:

	%[1]s completion zsh > "${fpath[1]}/_%[1]s"

You will need to start a new shell for this setup to take effect.
`, rootCmd.Name()),
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noDesc {
				return cmd.Root().GenZshCompletionNoDesc(cmd.OutOrStdout())
			}
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		},
	}
	if haveNoDescFlag {
		zsh.Flags().BoolVar(&noDesc, "no-descriptions", false, "disable completion descriptions")
	}

	// Fish completion (copied from Cobra's default)
	fish := &cobra.Command{
		Use:   "fish",
		Short: fmt.Sprintf(shortDesc, "fish"),
		Long: fmt.Sprintf(`Generate the autocompletion script for the fish shell.

To load completions in your current shell session:

	%[1]s completion fish | source

To load completions for every new session, execute once:

	%[1]s completion fish > ~/.config/fish/completions/%[1]s.fish

You will need to start a new shell for this setup to take effect.
`, rootCmd.Name()),
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), !noDesc)
		},
	}
	if haveNoDescFlag {
		fish.Flags().BoolVar(&noDesc, "no-descriptions", false, "disable completion descriptions")
	}

	// Add only Linux shells (no PowerShell)
	completionCmd.AddCommand(bash, zsh, fish)
	rootCmd.AddCommand(completionCmd)
}

// styledHelpFunc renders help output as markdown through glamour
func styledHelpFunc(cmd *cobra.Command, args []string) {
	markdown := generateHelpMarkdown(cmd)
	renderMarkdown(cmd.OutOrStdout(), markdown)
}

// styledUsageFunc renders usage output as markdown through glamour
func styledUsageFunc(cmd *cobra.Command) error {
	markdown := generateUsageMarkdown(cmd)
	renderMarkdown(cmd.OutOrStderr(), markdown)
	return nil
}

// GenerateHelpMarkdown creates markdown for the help output (exported for man page generation)
func GenerateHelpMarkdown(cmd *cobra.Command) string {
	return generateHelpMarkdown(cmd)
}

// generateHelpMarkdown creates markdown for the help output
func generateHelpMarkdown(cmd *cobra.Command) string {
	var md strings.Builder

	// Command name and description
	md.WriteString(fmt.Sprintf("# %s\n\n", cmd.Name()))

	if cmd.Long != "" {
		md.WriteString(fmt.Sprintf("%s\n\n", cmd.Long))
	} else if cmd.Short != "" {
		md.WriteString(fmt.Sprintf("%s\n\n", cmd.Short))
	}

	// Usage
	if cmd.Runnable() {
		md.WriteString("## Usage\n\n")
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.UseLine()))
	}

	// Aliases
	if len(cmd.Aliases) > 0 {
		md.WriteString("## Aliases\n\n")
		md.WriteString(fmt.Sprintf("`%s`\n\n", strings.Join(cmd.Aliases, "`, `")))
	}

	// Available Commands
	if hasSubCommands(cmd) {
		md.WriteString("## Available Commands\n\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.IsAvailableCommand() || subCmd.IsAdditionalHelpTopicCommand() {
				continue
			}
			md.WriteString(fmt.Sprintf("- **%s** - %s\n", subCmd.Name(), subCmd.Short))
		}
		md.WriteString("\n")
	}

	// Flags
	if cmd.HasAvailableLocalFlags() {
		md.WriteString("## Flags\n\n")
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.LocalFlags().FlagUsages()))
	}

	// Global Flags
	if cmd.HasAvailableInheritedFlags() {
		md.WriteString("## Global Flags\n\n")
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.InheritedFlags().FlagUsages()))
	}

	// Additional help topics
	if hasHelpSubCommands(cmd) {
		md.WriteString("## Additional Help Topics\n\n")
		for _, subCmd := range cmd.Commands() {
			if subCmd.IsAdditionalHelpTopicCommand() {
				md.WriteString(fmt.Sprintf("- **%s** - %s\n", subCmd.CommandPath(), subCmd.Short))
			}
		}
		md.WriteString("\n")
	}

	// Footer
	md.WriteString(fmt.Sprintf("Use `%s [command] --help` for more information about a command.\n", cmd.CommandPath()))

	return md.String()
}

// generateUsageMarkdown creates markdown for the usage output
func generateUsageMarkdown(cmd *cobra.Command) string {
	var md strings.Builder

	md.WriteString("## Usage\n\n")

	if cmd.Runnable() {
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.UseLine()))
	}

	// Available Commands
	if hasSubCommands(cmd) {
		md.WriteString("### Available Commands\n\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.IsAvailableCommand() || subCmd.IsAdditionalHelpTopicCommand() {
				continue
			}
			md.WriteString(fmt.Sprintf("- **%s** - %s\n", subCmd.Name(), subCmd.Short))
		}
		md.WriteString("\n")
	}

	// Flags
	if cmd.HasAvailableLocalFlags() {
		md.WriteString("### Flags\n\n")
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.LocalFlags().FlagUsages()))
	}

	// Global Flags
	if cmd.HasAvailableInheritedFlags() {
		md.WriteString("### Global Flags\n\n")
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.InheritedFlags().FlagUsages()))
	}

	return md.String()
}

// renderMarkdown renders markdown through glamour and writes it to w
func renderMarkdown(w io.Writer, markdown string) {
	rendered, err := ui.RenderMarkdownToString(markdown)
	if err != nil {
		// Fallback to plain text if glamour fails
		fmt.Fprintln(w, markdown)
		return
	}

	// Trim trailing whitespace and print
	fmt.Fprintln(w, strings.TrimRight(rendered, " \n"))
}

// hasSubCommands checks if command has available subcommands
func hasSubCommands(cmd *cobra.Command) bool {
	for _, subCmd := range cmd.Commands() {
		if subCmd.IsAvailableCommand() && !subCmd.IsAdditionalHelpTopicCommand() {
			return true
		}
	}
	return false
}

// hasHelpSubCommands checks if command has help subcommands
func hasHelpSubCommands(cmd *cobra.Command) bool {
	for _, subCmd := range cmd.Commands() {
		if subCmd.IsAdditionalHelpTopicCommand() {
			return true
		}
	}
	return false
}

// GetRootCommand returns the root command for external use (e.g., man page generation)
func GetRootCommand() *cobra.Command {
	return rootCmd
}
