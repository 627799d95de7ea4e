package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcutils/arc2bookmarks/internal/arc"
	"github.com/arcutils/arc2bookmarks/internal/export"
)

var (
	outputPath string
	docTitle   string
	listOnly   bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "arc2bookmarks [StorableSidebar.json]",
	Short: "Export Arc browser pinned tabs to a bookmarks HTML file",
	Long: `arc2bookmarks reads Arc browser's StorableSidebar.json and writes a
standard Netscape-format bookmarks HTML file that can be imported into any
browser (Chrome, Brave, Firefox, Safari, ...).

Without an argument the default Arc data location for the platform is used.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "arc_bookmarks.html", "Output file for the bookmarks HTML")
	rootCmd.Flags().StringVar(&docTitle, "title", "", "Title for the bookmark document")
	rootCmd.Flags().BoolVar(&listOnly, "list", false, "List exported spaces and bookmarks without writing a file")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
}

func run(cmd *cobra.Command, args []string) error {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var inputPath string
	if len(args) > 0 {
		inputPath = args[0]
	} else {
		path, err := arc.DefaultSidebarPath()
		if err != nil {
			return fmt.Errorf("could not find Arc browser data (%w); pass the path to StorableSidebar.json explicitly", err)
		}
		inputPath = path
	}

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	slog.Info("reading Arc data", "path", inputPath)
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	exporter := export.New(export.Options{Title: docTitle})

	if listOnly {
		return list(exporter, data)
	}

	result, err := exporter.Export(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(result.HTML), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		absOutput = outputPath
	}

	fmt.Printf("\nExport successful!\n")
	fmt.Printf("  Spaces:    %d\n", result.Stats.Spaces)
	fmt.Printf("  Folders:   %d\n", result.Stats.Folders)
	fmt.Printf("  Bookmarks: %d\n", result.Stats.Bookmarks)
	fmt.Printf("\nOutput saved to: %s\n", absOutput)
	fmt.Println("\nTo import into your browser:")
	fmt.Println("  1. Open your browser's bookmark manager")
	fmt.Println("  2. Look for 'Import bookmarks'")
	fmt.Println("  3. Select 'Bookmarks HTML file'")
	fmt.Printf("  4. Choose %s\n", filepath.Base(outputPath))

	return nil
}

// list prints every exportable bookmark as a space/folder/title path, the
// dry-run counterpart of writing the HTML file.
func list(exporter *export.Exporter, data []byte) error {
	groups, err := exporter.Collect(data)
	if err != nil {
		return err
	}

	for _, group := range groups {
		for _, folder := range group.Folders {
			for _, entry := range folder.Entries {
				fmt.Printf("%s/%s/%s\n", group.Title, folder.Title, entry.Title)
			}
		}
		for _, entry := range group.Tabs {
			fmt.Printf("%s/%s\n", group.Title, entry.Title)
		}
	}

	return nil
}
