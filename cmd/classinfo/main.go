// Command classinfo prints ObjectStore version information and, given a
// configuration file, verifies it and lists the registered class names.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/objectstore"
	"github.com/suparena/objectstore/registry"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Path to an objectstore YAML config to validate")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := objectstore.GetVersionInfo()
		fmt.Printf("ObjectStore classinfo version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *configFlag != "" {
		cfg, err := objectstore.LoadConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config OK: table %q in region %s\n", cfg.TableName, cfg.AWSRegion)
	}

	names := registry.Default.ClassNames()
	if len(names) == 0 {
		fmt.Println("No classes registered in the default registry.")
		return
	}
	fmt.Println("Registered classes:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}
