// config/config.go
package config

type Config struct {
	Templates []ConfigTemplate `yaml:"templates"`
}

// ConfigTemplate declares one named key template. Either Template references a
// catalog entry by its canonical name, or Algorithm and Params describe a
// custom parameter combination. Param sizes are taken as given; only the named
// catalog entries are pre-approved combinations.
type ConfigTemplate struct {
	Name      string            `yaml:"name"`
	Template  string            `yaml:"template"`
	Algorithm string            `yaml:"algorithm"`
	Prefix    string            `yaml:"prefix"`
	Params    map[string]uint32 `yaml:"params"`
}

// GetTemplateNames returns the names of all declared templates
func GetTemplateNames(cfg *Config) []string {
	names := make([]string, 0, len(cfg.Templates))
	for _, tmpl := range cfg.Templates {
		names = append(names, tmpl.Name)
	}
	return names
}
