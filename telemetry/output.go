package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/astrofield/redshift/config"
)

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir        string
	shiftsFile *os.File

	shiftsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	shiftsPath := filepath.Join(dir, "shifts.csv")
	f, err := os.Create(shiftsPath)
	if err != nil {
		return nil, fmt.Errorf("creating shifts.csv: %w", err)
	}
	om.shiftsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML alongside the CSV
// output, so a run's numbers stay tied to its parameters.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteShifts appends shift stat records to shifts.csv.
func (om *OutputManager) WriteShifts(records []ShiftStats) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	if !om.shiftsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.shiftsFile); err != nil {
			return fmt.Errorf("writing shifts: %w", err)
		}
		om.shiftsHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.shiftsFile); err != nil {
			return fmt.Errorf("writing shifts: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.shiftsFile == nil {
		return nil
	}
	return om.shiftsFile.Close()
}
