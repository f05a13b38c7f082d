package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "raytracer",
	Short: "A stochastic ray tracer with parallel band rendering",
	Long: `raytracer renders scenes of spheres and triangle meshes by stochastic
ray tracing: jittered per-pixel sampling, diffuse and metallic scattering,
and one render worker per horizontal image band.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
