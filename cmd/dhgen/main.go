// Command dhgen is the code-generation driver: it loads a DH chain
// configuration, composes and differentiates its symbolic pose, and
// writes the emitted numerical Go module to disk. It plays the role the
// original's example driver played, constructing a chain and calling
// export_expressions(output_path).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/itohio/dhgen/pkg/kinematics/codegen"
	"github.com/itohio/dhgen/pkg/kinematics/dh"
	"github.com/itohio/dhgen/pkg/logger"
)

func main() {
	config := flag.String("config", "", "Path to a YAML DH chain configuration")
	out := flag.String("out", "kinematics_generated.go", "Output path for the emitted module")
	pkgName := flag.String("package", "generatedkinematics", "Package name of the emitted module")
	flag.Parse()

	if *config == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*config, *out, *pkgName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, outPath, pkgName string) error {
	start := time.Now()

	logger.Log.Info().Str("config", configPath).Msg("loading DH chain")
	chain, err := dh.LoadChain(configPath)
	if err != nil {
		return fmt.Errorf("dhgen: %w", err)
	}

	logger.Log.Info().Int("joints", len(chain.ActuatedJoints())).Msg("composing and differentiating pose")

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("dhgen: %w", err)
	}
	defer f.Close()

	logger.Log.Info().Str("out", outPath).Msg("emitting numerical module")
	if err := codegen.Emit(f, chain, pkgName); err != nil {
		return fmt.Errorf("dhgen: %w", err)
	}

	logger.Log.Info().Dur("elapsed", time.Since(start)).Msg("done")
	return nil
}
