package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/egrangel/facerecon/hardware"
	"github.com/egrangel/facerecon/observability"
)

const defaultStateFilePath = "facerecon_state.json"

func main() {
	if err := hardware.InitializeHardware(); err != nil {
		log.Printf("Warning: %v. Falling back to nvidia-smi detection.", err)
	} else {
		defer hardware.ShutdownHardware()
	}

	specs := hardware.HostSpecs()
	log.Printf("Host: cpu=%q cores=%s ram_gb=%s", specs.CPUModel, specs.CPUCores, specs.TotalRAMGB)

	resolver := hardware.NewResolver()
	computeCap := resolver.Resolve()

	// Telemetry export is opt-in; the probe stays a plain CLI without it.
	if endpoint := os.Getenv("FACERECON_OTEL_ENDPOINT"); endpoint != "" {
		statePath := os.Getenv("FACERECON_STATE_FILE")
		if statePath == "" {
			statePath = defaultStateFilePath
		}
		instanceID, err := observability.LoadOrCreateInstanceID(statePath)
		if err != nil {
			log.Printf("Warning: could not load instance state: %v", err)
		} else {
			det := observability.Detection{
				ComputeCapability: computeCap,
				GPUModel:          resolver.GPUModelName(),
			}
			shutdown, err := observability.InitProviders(context.Background(), instanceID, endpoint, det)
			if err != nil {
				log.Printf("Warning: failed to initialize observability providers: %v", err)
			} else {
				defer func() {
					if err := shutdown(context.Background()); err != nil {
						log.Printf("Error shutting down observability providers: %v", err)
					}
				}()
			}
		}
	}

	fmt.Printf("Using compute capability: %s\n", computeCap)
}
