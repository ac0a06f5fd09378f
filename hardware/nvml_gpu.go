//go:build gpu

package hardware

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Real implementation for GPU builds.
func InitializeHardware() error {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return fmt.Errorf("NVML init failed: %v", nvml.ErrorString(ret))
	}
	return nil
}

func ShutdownHardware() {
	nvml.Shutdown()
}

// nvmlComputeCapability asks NVML directly for device 0's CUDA compute
// capability, skipping the nvidia-smi round trips when the driver is loaded.
func nvmlComputeCapability() (string, bool) {
	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS || count == 0 {
		return "", false
	}
	dev, ret := nvml.DeviceGetHandleByIndex(0)
	if ret != nvml.SUCCESS {
		return "", false
	}
	major, minor, ret := dev.GetCudaComputeCapability()
	if ret != nvml.SUCCESS {
		return "", false
	}
	return fmt.Sprintf("%d.%d", major, minor), true
}
