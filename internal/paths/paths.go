package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// AppDir returns ~/.selectbox.
func AppDir() string {
	return filepath.Join(home(), ".selectbox")
}

// ConfigFile returns ~/.selectbox/config.yaml.
func ConfigFile() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// DatasetsDir returns ~/.selectbox/datasets.
func DatasetsDir() string {
	return filepath.Join(AppDir(), "datasets")
}
