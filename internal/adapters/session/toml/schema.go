package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Profile profileSchema `toml:"profile"`
}

// profileSchema caches the display fields shown while the server is
// unreachable. The token never lands here; it lives in the secret store.
type profileSchema struct {
	Name  string `toml:"name,omitempty"`
	Email string `toml:"email,omitempty"`
	Photo string `toml:"photo,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profile schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
