//go:build !gpu

package hardware

// Stub implementation for CPU-only builds, so that the probe compiles
// without cgo and without the NVML headers installed.
func InitializeHardware() error {
	return nil
}

func ShutdownHardware() {
}

func nvmlComputeCapability() (string, bool) {
	return "", false
}
