package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/trias/pkg/trias"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "trias.yaml")
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load("")
	require.Nil(t, err)

	assert.Equal(t, trias.DefaultEndpoint, config.Endpoint)
	assert.Equal(t, "uni0719", config.RequestorRef)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "de:08111:6008", config.Stop)
	assert.Equal(t, "Universität", config.StopName)
	assert.Equal(t, "statistics", config.StatisticsDirectory)
	assert.Equal(t, ":5001", config.Listen)
	assert.Empty(t, config.Transforms)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
endpoint: http://localhost:8080/trias
timeout: 5s
stop: de:08111:6118
stop_name: Hauptbahnhof
transforms:
  - type: ctdf.Departure
    match:
      Line: X1
    data:
      LineColour: "#123456"
`)

	config, err := Load(path)
	require.Nil(t, err)

	assert.Equal(t, "http://localhost:8080/trias", config.Endpoint)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.Equal(t, "de:08111:6118", config.Stop)
	assert.Equal(t, "Hauptbahnhof", config.StopName)
	assert.Equal(t, "uni0719", config.RequestorRef)

	require.Len(t, config.Transforms, 1)
	assert.Equal(t, "ctdf.Departure", config.Transforms[0].Type)
	assert.Equal(t, "X1", config.Transforms[0].Match["Line"])
	assert.Equal(t, "#123456", config.Transforms[0].Data["LineColour"])
}

func TestLoadEmptyFile(t *testing.T) {
	config, err := Load(writeConfig(t, ""))
	require.Nil(t, err)

	assert.Equal(t, DefaultStop, config.Stop)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "stop: de:08111:6118\nlisten: \":9000\"\n")

	t.Setenv("TRIAS_STOP", "de:08111:6056")
	t.Setenv("TRIAS_REQUESTOR_REF", "other")
	t.Setenv("TRIAS_TIMEOUT", "2m")

	config, err := Load(path)
	require.Nil(t, err)

	assert.Equal(t, "de:08111:6056", config.Stop)
	assert.Equal(t, "other", config.RequestorRef)
	assert.Equal(t, 2*time.Minute, config.Timeout)
	assert.Equal(t, ":9000", config.Listen)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)

	_, err = Load(writeConfig(t, "stop: [unterminated"))
	assert.NotNil(t, err)

	_, err = Load(writeConfig(t, "timeout: soon"))
	assert.NotNil(t, err)

	t.Setenv("TRIAS_TIMEOUT", "soon")
	_, err = Load("")
	assert.NotNil(t, err)
}
