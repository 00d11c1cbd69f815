package estimate

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

func WriteSweepCSV(w io.Writer, rows []SweepRow) error {
	cw := csv.NewWriter(w)

	header := []string{
		"index",
		"hours",
		"energy_to_deliver_kwh",
		"average_power_kw",
		"direction",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			fmtFloat(r.Hours),
			fmtFloat(r.EnergyToDeliverKWh),
			fmtFloat(r.AveragePowerKW),
			string(r.Direction),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSweepCSVFile writes rows to path, creating parent directories.
func WriteSweepCSVFile(path string, rows []SweepRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSweepCSV(f, rows)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
