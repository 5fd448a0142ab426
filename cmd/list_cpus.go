package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
)

// List the CPUs available to the row worker pool.
func ListCPUs(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	cpuInfo, err := cpu.Info()
	if err != nil {
		return fmt.Errorf("could not query cpu info: %w", err)
	}
	logical, err := cpu.Counts(true)
	if err != nil {
		return fmt.Errorf("could not query cpu count: %w", err)
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"CPU", "Model", "Cores", "MHz"})
	for _, info := range cpuInfo {
		table.Append([]string{
			fmt.Sprintf("%d", info.CPU),
			info.ModelName,
			fmt.Sprintf("%d", info.Cores),
			fmt.Sprintf("%.0f", info.Mhz),
		})
	}
	table.SetFooter([]string{"", "", "LOGICAL", fmt.Sprintf("%d", logical)})
	table.Render()

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warningf("could not query memory info: %s", err)
	} else {
		buf.WriteString(fmt.Sprintf("Memory: %d MiB total, %d MiB available\n", memInfo.Total>>20, memInfo.Available>>20))
	}

	logger.Noticef("available cpus\n%s", buf.String())
	return nil
}
