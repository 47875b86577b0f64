package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/ruminaider/selectbox/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestAppDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.AppDir(), home))
	assert.True(t, strings.HasSuffix(paths.AppDir(), ".selectbox"))
}

func TestConfigFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.ConfigFile(), "config.yaml"))
}

func TestDatasetsDir(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.DatasetsDir(), "datasets"))
}
