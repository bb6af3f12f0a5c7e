// boarddl is the headless companion to the Board Browser GUI: it
// searches the catalog, downloads board files, and patches ROMs from
// the command line, driving the same pipeline with flag-supplied paths
// instead of file dialogs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/catalog"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/config"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/model"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/patch"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/tool"
)

var (
	green  = color.New(color.FgHiGreen).SprintfFunc()
	yellow = color.New(color.FgHiYellow).SprintfFunc()
)

var (
	romFlag string
	outFlag string
)

var rootCmd = &cobra.Command{
	Use:           "boarddl",
	Short:         "Browse and patch PartyPlanner board projects",
	Long:          "boarddl searches the board catalog, downloads board files, and patches them onto N64 ROMs using the PartyPlanner64 CLI.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the board catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return searchRun(args[0])
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <project-id>",
	Short: "Show project details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return infoRun(args[0])
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download <project-id>",
	Short: "Download a project's latest board file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return downloadRun(args[0])
	},
}

var patchCmd = &cobra.Command{
	Use:   "patch <project-id>",
	Short: "Patch a board onto a ROM image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return patchRun(args[0])
	},
}

func init() {
	downloadCmd.Flags().StringVar(&outFlag, "out", "", "Destination path for the board file (required)")
	downloadCmd.MarkFlagRequired("out")

	patchCmd.Flags().StringVar(&romFlag, "rom", "", "ROM image to patch (required)")
	patchCmd.Flags().StringVar(&outFlag, "out", "", "Destination path for the patched ROM (required)")
	patchCmd.MarkFlagRequired("rom")
	patchCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(searchCmd, infoCmd, downloadCmd, patchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newService builds the patch service with a flag-driven picker
func newService(picker patch.FilePicker) (*patch.Service, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	client := catalog.NewClient(cfg.APIBaseURL)
	provisioner := tool.NewProvisioner(cfg, client)
	return patch.NewService(client, provisioner, tool.ExecRunner{}, picker, os.TempDir()), nil
}

func searchRun(term string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	client := catalog.NewClient(cfg.APIBaseURL)

	results, err := client.Search(term)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println(yellow("No projects found for %q", term))
		return nil
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"ID", "Name"})
	for _, summary := range results {
		table.Append([]string{summary.ID, summary.Name})
	}
	table.Render()
	return nil
}

func infoRun(projectID string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	client := catalog.NewClient(cfg.APIBaseURL)

	detail, err := client.GetProjectDetail(projectID)
	if err != nil {
		return err
	}

	creationDate, err := model.FormatCreationDate(detail.CreationDate)
	if err != nil {
		creationDate = detail.CreationDate
	}

	enriched := model.ProjectDetail{
		ID:               projectID,
		Name:             detail.Name,
		Author:           detail.Author,
		CreationDate:     creationDate,
		Difficulty:       detail.Difficulty,
		RecommendedTurns: detail.RecommendedTurns,
		HasCustomEvents:  detail.CustomEvents,
		HasCustomMusic:   detail.CustomMusic,
		Description:      detail.Description,
	}

	fmt.Println(enriched.GetDisplayTitle())
	fmt.Println("Created on:", enriched.CreationDate)
	fmt.Println("Difficulty:", enriched.GetDifficultyStars())
	fmt.Println("Recommended Turns:", enriched.GetRecommendedTurnsLabel())
	fmt.Println("Custom Events:", yesNo(enriched.HasCustomEvents))
	fmt.Println("Custom Music:", yesNo(enriched.HasCustomMusic))
	if enriched.Description != "" {
		fmt.Println()
		fmt.Println(enriched.Description)
	}
	return nil
}

func downloadRun(projectID string) error {
	svc, err := newService(&flagPicker{savePath: outFlag})
	if err != nil {
		return err
	}

	job, err := svc.RunBoardDownload(projectID, projectID)
	if err != nil {
		return err
	}
	fmt.Println(green("Board file saved to %s", job.OutputPath))
	return nil
}

func patchRun(projectID string) error {
	if _, err := os.Stat(romFlag); err != nil {
		return fmt.Errorf("ROM file not found: %s", romFlag)
	}

	svc, err := newService(&flagPicker{openPath: romFlag, savePath: outFlag})
	if err != nil {
		return err
	}

	job, err := svc.RunPatch(context.Background(), projectID, projectID)
	if err != nil {
		if errors.Is(err, patch.ErrUserCancelled) {
			fmt.Println(yellow("Patch cancelled"))
			return nil
		}
		return err
	}
	fmt.Println(green("Patched ROM saved to %s", job.OutputPath))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// flagPicker satisfies patch.FilePicker from command-line flags
type flagPicker struct {
	openPath string
	savePath string
}

func (p *flagPicker) ChooseOpenPath(title string, extensions []string) (string, error) {
	return p.openPath, nil
}

func (p *flagPicker) ChooseSavePath(title, suggestedName string, extensions []string) (string, error) {
	return p.savePath, nil
}
