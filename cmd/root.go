// Package cmd provides the root command and CLI setup for vbs2js.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/vbs2js/internal/adapter"
	"github.com/mouse-blink/vbs2js/internal/catalog"
	"github.com/mouse-blink/vbs2js/internal/controller"
	"github.com/mouse-blink/vbs2js/internal/domain"
	m "github.com/mouse-blink/vbs2js/internal/model"
)

var fsAdapter adapter.ScriptFSAdapter
var ruleCatalog *catalog.Catalog
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalScriptFSAdapter()
	ruleCatalog = catalog.New()
	workflow = domain.NewWorkflow(fsAdapter, ruleCatalog, ui)
}

var inputFlag string
var outputFlag string
var showProgressFlag bool
var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vbs2js --input <script.vbs>",
		Short: "Best-effort VBScript to JavaScript converter",
		Long: `vbs2js rewrites a VBScript file into an approximate JavaScript
equivalent using purely lexical pattern matching. No parsing, no symbol
table: the output is a starting point that always needs manual review.

The converted file defaults to the input name with a .js extension.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Convert(domain.ConvertArgs{
				Input:        m.Path(inputFlag),
				Output:       m.Path(outputFlag),
				ShowProgress: showProgressFlag,
				Threads:      parallelFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "path of the VBScript file to convert")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "path of the JavaScript file to write (default: input with .js extension)")
	cmd.Flags().BoolVarP(&showProgressFlag, "show-progress", "s", false, "show one line per applied conversion")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for line conversion")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
