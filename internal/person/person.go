// Package person implements the serialization demo: loading a typed
// Person record from a JSON or YAML file with schema validation.
package person

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// dateLayout is the only accepted date format.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It unmarshals from
// the strict "YYYY-MM-DD" form in both JSON and YAML; anything else is
// rejected.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.parse(s)
}

// UnmarshalYAML implements yaml.Unmarshaler for Date.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.parse(s)
}

func (d *Date) parse(s string) error {
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	d.Time = parsed
	return nil
}

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// Address is the nested address record of a [Person].
type Address struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	ZipCode string `json:"zip_code" yaml:"zip_code"`
	Country string `json:"country" yaml:"country"`
}

// Person is the record the demo deserializes. All fields are required;
// [Load] rejects records with missing fields.
type Person struct {
	FirstName string  `json:"first_name" yaml:"first_name"`
	LastName  string  `json:"last_name" yaml:"last_name"`
	BirthDate Date    `json:"birth_date" yaml:"birth_date"`
	Address   Address `json:"address" yaml:"address"`
}

// String renders the person for demo output.
func (p *Person) String() string {
	return fmt.Sprintf("%s %s, born %s - %s, %s %s, %s",
		p.FirstName, p.LastName, p.BirthDate,
		p.Address.Street, p.Address.City, p.Address.ZipCode, p.Address.Country,
	)
}

// validate checks that every field carries a value. Errors name the
// offending field using its serialized key.
func (p *Person) validate() error {
	required := []struct {
		field string
		value string
	}{
		{"first_name", p.FirstName},
		{"last_name", p.LastName},
		{"address.street", p.Address.Street},
		{"address.city", p.Address.City},
		{"address.zip_code", p.Address.ZipCode},
		{"address.country", p.Address.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.field)
		}
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("birth_date is required")
	}
	return nil
}

// Load reads a Person from the given file, choosing the codec by file
// extension: .json for JSON, .yaml or .yml for YAML. Any other extension
// is an error. The loaded record is validated before being returned.
func Load(path string) (*Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var person Person
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &person); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &person); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported file format: %s (use .json or .yaml/.yml)", path)
	}

	if err := person.validate(); err != nil {
		return nil, fmt.Errorf("invalid person record: %w", err)
	}
	return &person, nil
}
