package dataset

import "path/filepath"

// Config holds configuration for the CSV data sources.
type Config struct {
	// Dir is the directory containing the CSV exports.
	Dir string `mapstructure:"dir" default:"data"`
	// ProvisionsFile is the employee provisioning matrix export.
	ProvisionsFile string `mapstructure:"provisions_file" default:"josys-provisions.csv"`
	// DevicesFile is the device inventory export.
	DevicesFile string `mapstructure:"devices_file" default:"josys-devices.csv"`
	// PortfolioFile is the app portfolio export.
	PortfolioFile string `mapstructure:"portfolio_file" default:"josys-app-portfolio.csv"`
}

// ProvisionsPath returns the full path to the provisioning export.
func (c Config) ProvisionsPath() string {
	return filepath.Join(c.Dir, c.ProvisionsFile)
}

// DevicesPath returns the full path to the device inventory export.
func (c Config) DevicesPath() string {
	return filepath.Join(c.Dir, c.DevicesFile)
}

// PortfolioPath returns the full path to the app portfolio export.
func (c Config) PortfolioPath() string {
	return filepath.Join(c.Dir, c.PortfolioFile)
}
