package useconditions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BuiltinLiving(t *testing.T) {
	r := NewRegistry()
	p, err := r.Get("Living")
	require.NoError(t, err)

	assert.Equal(t, "Living", p.Usage)
	assert.Equal(t, 20.0, p.SetpointHeating)
	assert.Equal(t, 6.0, p.TypicalRoomLength)
	assert.Equal(t, 4.0, p.TypicalRoomWidth)
}

func TestRegistry_UnknownUsage(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("ServerRoom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown usage")
}

func TestRegistry_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	content := `
profiles:
  Office:
    setpoint_heating: 21
    setpoint_cooling: 25
    infiltration_rate: 0.4
    persons_gain: 6.0
    typical_room_length: 5.0
    typical_room_width: 5.0
  Living:
    setpoint_heating: 19
    typical_room_length: 6.0
    typical_room_width: 4.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r := NewRegistry()
	require.NoError(t, r.LoadFile(path))

	office, err := r.Get("Office")
	require.NoError(t, err)
	assert.Equal(t, "Office", office.Usage)
	assert.Equal(t, 21.0, office.SetpointHeating)

	// File entries override built-ins.
	living, err := r.Get("Living")
	require.NoError(t, err)
	assert.Equal(t, 19.0, living.SetpointHeating)

	assert.Equal(t, []string{"Living", "Office"}, r.Names())
}

func TestRegistry_LoadFile_InvalidDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	content := `
profiles:
  Broken:
    setpoint_heating: 21
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r := NewRegistry()
	err := r.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typical room dimensions")
}

func TestRegistry_LoadFile_Missing(t *testing.T) {
	r := NewRegistry()
	err := r.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
