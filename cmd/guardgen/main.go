package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/cartpole-guard/internal/attest"
	"github.com/danielpatrickdp/cartpole-guard/internal/codegen"
	"github.com/danielpatrickdp/cartpole-guard/internal/config"
)

// #region main
func main() {
	outDir := flag.String("out", ".", "directory to write guard.c into")
	limitsPath := flag.String("limits", "", "path to limits YAML (empty uses defaults)")
	flag.Parse()

	limits, err := config.LoadLimits(*limitsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load limits: %v\n", err)
		os.Exit(1)
	}

	path, err := codegen.WriteC(*outDir, limits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "write guard source: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Printf("Spec hash: %s\n", attest.Fingerprint(limits))
}

// #endregion main
