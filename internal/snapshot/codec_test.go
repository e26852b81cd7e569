package snapshot

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cyberpath/internal/answers"
	"github.com/abhisek/cyberpath/internal/catalog"
	"github.com/abhisek/cyberpath/internal/progress"
	"github.com/abhisek/cyberpath/internal/settings"
)

var exportTime = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

func sampleState(t *testing.T) State {
	t.Helper()

	set := answers.New(catalog.Questions())
	set.Select("q1", "defense")
	set.Select("q3", "analysis")
	set.Toggle("q6", "networks")

	role, err := catalog.RoleByID("soc_analyst")
	require.NoError(t, err)

	log := progress.Log{}.
		ToggleComplete("networking_basics_soc", true, exportTime).
		LogHours("networking_basics_soc", 12).
		SaveNotes("os_fundamentals", "watching the lecture series")

	return State{
		Answers:      set,
		SelectedRole: &role,
		Progress:     log,
		Settings:     settings.Settings{BorderRadius: settings.Radius3XL, AccentColor: settings.Teal},
	}
}

func TestRoundTrip(t *testing.T) {
	state := sampleState(t)

	data, err := Encode(state, exportTime)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, state.Answers, decoded.Answers)
	assert.Equal(t, state.SelectedRole, decoded.SelectedRole)
	assert.Equal(t, state.Settings, decoded.Settings)
	require.Len(t, decoded.Progress, len(state.Progress))
	for id, want := range state.Progress {
		got := decoded.Progress[id]
		assert.Equal(t, want.Completed, got.Completed, id)
		assert.Equal(t, want.HoursLogged, got.HoursLogged, id)
		assert.Equal(t, want.Notes, got.Notes, id)
		if want.DateCompleted != nil {
			require.NotNil(t, got.DateCompleted, id)
			assert.True(t, want.DateCompleted.Equal(*got.DateCompleted), id)
		}
	}
}

func TestEncode_WireFormat(t *testing.T) {
	data, err := Encode(sampleState(t), exportTime)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.JSONEq(t, `"1.0"`, string(raw["exportVersion"]))
	assert.Contains(t, string(raw["exportDate"]), "2025-06-01T10:30:00")
	assert.Contains(t, []string{"true", "false"}, extractCompleted(t, raw["progress"]))
}

func extractCompleted(t *testing.T, progressRaw json.RawMessage) string {
	t.Helper()
	var log map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(progressRaw, &log))
	rec, ok := log["networking_basics_soc"]
	require.True(t, ok)
	return string(rec["completed"])
}

func TestDecode_MissingVersion_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{"answers": {}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecode_MissingAnswers_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{"exportVersion": "1.0"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecode_InvalidJSON_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecode_BadAnswerShape_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{"exportVersion": "1.0", "answers": {"q1": 42}}`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecode_MissingOptionalSlices_Defaults(t *testing.T) {
	state, err := Decode([]byte(`{"exportVersion": "1.0", "answers": {"q1": "offense"}}`))
	require.NoError(t, err)

	assert.Nil(t, state.SelectedRole)
	assert.NotNil(t, state.Progress)
	assert.Empty(t, state.Progress)
	assert.Equal(t, settings.Default(), state.Settings)
}

func TestDecode_UnknownSettings_Normalized(t *testing.T) {
	payload := `{
	  "exportVersion": "1.0",
	  "answers": {},
	  "settings": {"borderRadius": "square", "accentColor": "teal"}
	}`
	state, err := Decode([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, settings.Radius2XL, state.Settings.BorderRadius)
	assert.Equal(t, settings.Teal, state.Settings.AccentColor)
}

func TestDecode_VersionGate(t *testing.T) {
	ok, err := Decode([]byte(`{"exportVersion": "1.3", "answers": {}}`))
	require.NoError(t, err, "same major version must be accepted")
	assert.NotNil(t, ok.Progress)

	_, err = Decode([]byte(`{"exportVersion": "2.0", "answers": {}}`))
	assert.ErrorIs(t, err, ErrMalformed, "newer major version must be rejected")

	_, err = Decode([]byte(`{"exportVersion": "not-a-version", "answers": {}}`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFileRoundTrip(t *testing.T) {
	state := sampleState(t)
	path := filepath.Join(t.TempDir(), DefaultExportName(exportTime))

	require.NoError(t, WriteFile(path, state, exportTime))

	decoded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, state.Answers, decoded.Answers)
	assert.Equal(t, state.SelectedRole.ID, decoded.SelectedRole.ID)
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformed), "missing file is an I/O error, not a malformed snapshot")
}

func TestDefaultExportName(t *testing.T) {
	assert.Equal(t, "cyber-roadmap-2025-06-01.json", DefaultExportName(exportTime))
}
