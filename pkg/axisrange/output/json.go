// Package output serializes resolved charts.
package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ReportsToJSON serializes a list of chart reports.
func ReportsToJSON(reports []*models.ChartReport, pretty bool) ([]byte, error) {
	if reports == nil {
		reports = []*models.ChartReport{}
	}
	return ToJSON(reports, pretty)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
