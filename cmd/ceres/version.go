package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"ceres-hq/ceres/pkg/catalog"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "0.1.0"
	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"
	// BuildDate is the build timestamp (set by build flags)
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the ceres build version and the revision of the compiled-in
regulation dataset.

Validation reports cite the catalog version they were produced with,
so when reproducing a report, compare its catalog version against the
builtin dataset shown here (or the version of your configured catalog
source).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Ceres %s\n", Version)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Builtin Catalog: %s\n", catalog.BuiltinVersion)
		fmt.Printf("Go Version: %s\n", runtime.Version())
		fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
