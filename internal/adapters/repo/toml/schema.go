package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version      int    `toml:"version"`
	AuthToken    string `toml:"auth_token"`
	RefreshToken string `toml:"refresh_token"`
	Language     string `toml:"language"`
}

func (f *fileSchema) applyDefaults() {
	if f.Version == 0 {
		f.Version = currentSchemaVersion
	}
}

func (f fileSchema) validateVersion() error {
	if f.Version != 0 && f.Version != currentSchemaVersion {
		return fmt.Errorf("unsupported session file version %d", f.Version)
	}

	return nil
}
