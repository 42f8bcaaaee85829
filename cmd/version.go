package cmd

import (
	"fmt"
	"runtime"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		myFigure := figure.NewColorFigure("Sealbox", "alligator2", "green", true)
		myFigure.Print()
		fmt.Println()
		fmt.Printf("sealbox %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	},
}
