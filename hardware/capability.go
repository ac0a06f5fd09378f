package hardware

import (
	"log"
	"strings"
)

// DefaultComputeCapability is returned whenever detection yields nothing.
// The reference deployment target is an RTX 3050.
const DefaultComputeCapability = "8.6"

type capabilityRule struct {
	substr     string
	capability string
}

// Evaluated in order, first match wins. Covers the Ampere and Ada consumer
// cards the inference pipeline ships CUDA kernels for.
var capabilityRules = []capabilityRule{
	{"3050", "8.6"},
	{"3060", "8.6"},
	{"3070", "8.6"},
	{"3080", "8.6"},
	{"3090", "8.6"},
	{"4060", "8.9"},
	{"4070", "8.9"},
	{"4080", "8.9"},
	{"4090", "8.9"},
}

// Resolver determines the CUDA compute capability of the local GPU.
type Resolver struct {
	smi Querier
}

func NewResolver() *Resolver {
	return &Resolver{smi: nvsmiQuerier{}}
}

// Resolve returns the compute capability as a "major.minor" string. It never
// fails: every error path degrades to DefaultComputeCapability.
func (r *Resolver) Resolve() string {
	if cc, ok := nvmlComputeCapability(); ok {
		log.Printf("NVML reported compute capability: %s", cc)
		return cc
	}

	result := r.smi.Query("name,compute_cap", csvNoUnits)
	if result.Err != nil {
		log.Printf("Error getting GPU info: %v", result.Err)
		return DefaultComputeCapability
	}
	if result.OK() {
		gpuInfo := result.FirstLine()
		log.Printf("GPU Info: %s", gpuInfo)
		if strings.Contains(gpuInfo, "RTX 3050") {
			log.Println("Detected NVIDIA RTX 3050 - Compute Capability: 8.6")
			return "8.6"
		}
	}

	// Fallback: detect from the GPU name alone.
	result = r.smi.Query("name", csvNoHeader)
	if result.Err != nil {
		log.Printf("Error getting GPU info: %v", result.Err)
		return DefaultComputeCapability
	}
	if result.OK() {
		gpuName := result.FirstLine()
		log.Printf("GPU Name: %s", gpuName)
		if strings.Contains(gpuName, "RTX 30") || strings.Contains(gpuName, "RTX 40") {
			for _, rule := range capabilityRules {
				if strings.Contains(gpuName, rule.substr) {
					return rule.capability
				}
			}
		}
	}

	return DefaultComputeCapability
}

// GPUModelName returns the product name of device 0, or "unknown" when no
// GPU is reachable. Used for telemetry attributes only.
func (r *Resolver) GPUModelName() string {
	result := r.smi.Query("name", csvNoHeader)
	if result.OK() {
		if name := result.FirstLine(); name != "" {
			return name
		}
	}
	return "unknown"
}

// DetectComputeCapability resolves against the real nvidia-smi binary.
func DetectComputeCapability() string {
	return NewResolver().Resolve()
}
