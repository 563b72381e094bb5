package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"meditrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnknownStorageDriver(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New(Options{Storage: "mongo", In: strings.NewReader(""), Out: &bytes.Buffer{}})

	assert.ErrorContains(t, err, `unknown storage driver "mongo"`)
}

func TestNew_InvalidLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := New(Options{In: strings.NewReader(""), Out: &bytes.Buffer{}})

	assert.ErrorContains(t, err, "invalid log level")
}

func TestRun_LoadsDataBeforeConsole(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	dataDir := filepath.Join(dir, "clinic")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "patients.csv"), []byte("P1,Doe\\, Jane,34,555\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "doctors.csv"), []byte("D1,Dr. Smith,50,556,CARDIOLOGIST,500\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "appointments.csv"), []byte("A1,P1,D1,2025-06-02 10:30,CONFIRMED\nA2,P9,D1,2025-06-02 11:30,CONFIRMED\n"), 0o644))

	var out bytes.Buffer
	app, err := New(Options{
		LoadData: true,
		DataDir:  dataDir,
		Storage:  config.StorageDriverCSV,
		In:       strings.NewReader("3\n2\n0\n0\n"),
		Out:      &out,
	})
	require.NoError(t, err)
	defer app.Close()

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, dataDir, app.Config.Storage.DataDir)
	assert.Contains(t, out.String(), "A1 | 2025-06-02 10:30 | patient Doe, Jane (P1) | doctor Dr. Smith (D1) | CONFIRMED")
	assert.NotContains(t, out.String(), "A2 |")
}

func TestRun_WithoutLoadDataStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "patients.csv"), []byte("P1,Alice,30,555\n"), 0o644))

	var out bytes.Buffer
	app, err := New(Options{DataDir: dir, In: strings.NewReader("1\n2\n0\n0\n"), Out: &out})
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "No patients found.")
}
