package hardware

import (
	"strconv"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Specs holds the host facts the inference pipeline cares about when no GPU
// is available: the CPU fallback sizes its thread pool from the core count.
type Specs struct {
	CPUModel   string `json:"cpu_model"`
	CPUCores   string `json:"cpu_cores"`
	TotalRAMGB string `json:"total_ram_gb"`
}

// HostSpecs collects CPU and memory facts. Fields that cannot be read stay
// empty; collection itself never fails.
func HostSpecs() Specs {
	var specs Specs
	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		specs.CPUModel = cpuInfo[0].ModelName
	}
	if coreCount, err := cpu.Counts(true); err == nil {
		specs.CPUCores = strconv.Itoa(coreCount)
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		specs.TotalRAMGB = strconv.Itoa(int(vmStat.Total / 1024 / 1024 / 1024))
	}
	return specs
}
