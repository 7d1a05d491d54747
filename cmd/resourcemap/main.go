package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/resourcemap"
	"github.com/suparena/resourcemap/manifest"
)

var (
	versionFlag  = flag.Bool("version", false, "Show version information")
	vFlag        = flag.Bool("v", false, "Show version information (short)")
	manifestPath = flag.String("manifest", "", "Validate a resource manifest file")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := resourcemap.GetVersionInfo()
		fmt.Printf("resourcemap version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *manifestPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	m, err := manifest.Load(*manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	projections := 0
	for _, rd := range m.Resources {
		fmt.Printf("resource %-20s -> %s\n", rd.Name, rd.Type)
		for _, pd := range rd.Projections {
			fmt.Printf("  projection %s\n", pd.Name)
			projections++
		}
	}
	for _, ed := range m.Embedded {
		fmt.Printf("embedded %v -> %s\n", ed.Properties, ed.Type)
	}
	fmt.Printf("%d resources, %d embedded declarations, %d projections: OK\n",
		len(m.Resources), len(m.Embedded), projections)
}
