package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pixelform",
	Short: "Generate pixel-matched HTML from Figma JSON and screenshots",
	Long: "pixelform turns uploaded structured-data files and reference screenshots\n" +
		"into generated, pixel-matched 600px-wide HTML documents via the Gemini API.",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
