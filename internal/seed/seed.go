// Package seed provides the bundled sample tasks and progress history.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/riordanpawley/bennu/internal/domain"
)

//go:embed seed.yaml
var defaultData []byte

// Data is the decoded seed document
type Data struct {
	Tasks        []domain.Task          `yaml:"tasks"`
	Achievements []domain.Achievement   `yaml:"achievements"`
	Week         []domain.DailyProgress `yaml:"week"`
	Streak       int                    `yaml:"streak"`
}

// Default decodes the embedded seed
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Parse decodes a seed document and validates task priorities
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	for i, t := range d.Tasks {
		if t.DueDate != nil {
			// due dates are calendar days in local time, as the create form reads them
			y, m, day := t.DueDate.Date()
			local := time.Date(y, m, day, 0, 0, 0, 0, time.Local)
			d.Tasks[i].DueDate = &local
		}
		if !t.Priority.Valid() {
			return nil, &domain.ValidationError{
				Field:   "priority",
				Message: fmt.Sprintf("task %q has unknown priority %q", t.ID, t.Priority),
			}
		}
	}
	return &d, nil
}
