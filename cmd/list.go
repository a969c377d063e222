package main

import (
	"fmt"
	"io"
	"strings"

	"brewbell/internal/core/model"
	"brewbell/internal/storage"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the beverage list",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the beverage list with a YAML or TOML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Underline(true)
	styleTime   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E8BE42"))
)

func init() {
	listCmd.Flags().StringP("format", "f", "table", "output format: table, yaml or toml")
	listCmd.Flags().String("export", "", "write the list to a file; the extension picks the format")
	rootCmd.AddCommand(listCmd, importCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	beverages, err := env.beverages()
	if err != nil {
		return err
	}

	if export, _ := cmd.Flags().GetString("export"); export != "" {
		if err := storage.SaveBeverages(export, beverages); err != nil {
			return err
		}
		env.logger.Info("beverages exported", "path", export, "count", len(beverages))
		return nil
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table":
		return writeTable(cmd.OutOrStdout(), beverages)
	case string(storage.FormatYAML), string(storage.FormatTOML):
		data, err := storage.Encode(beverages, storage.Format(format))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	beverages, err := storage.LoadBeverages(args[0])
	if err != nil {
		return err
	}
	if err := storage.SaveBeverages(env.beveragesPath, beverages); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d beverages into %s\n", len(beverages), env.beveragesPath)
	return nil
}

func writeTable(out io.Writer, beverages []model.Beverage) error {
	width := len("Beverage")
	for _, beverage := range beverages {
		width = max(width, len(beverage.Name))
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("%-*s", width, "Beverage")))
	b.WriteString("  ")
	b.WriteString(styleHeader.Render(fmt.Sprintf("%8s", "Time")))
	b.WriteString("  ")
	b.WriteString(styleHeader.Render("Shape"))
	b.WriteString("\n")
	for _, beverage := range beverages {
		fmt.Fprintf(&b, "%-*s  %s  %s\n",
			width, beverage.Name,
			styleTime.Render(fmt.Sprintf("%8s", model.FormatRemaining(beverage.BrewSeconds))),
			beverage.Shape.DisplayName())
	}
	_, err := io.WriteString(out, b.String())
	return err
}
