package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/govalues/decimal96/internal/fuzzfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "1.5 2 + 3 *"}, "10.5\n"},
		{[]string{"eval", "1", "3", "/"}, "0.3333333333333333333333333333\n"},
		{[]string{"eval", "--", "-5.67 2 %"}, "-1.67\n"},
		{[]string{"eval", "--sci", "1.5 2 +"}, "3.5e0\n"},
		{[]string{"eval", "2 3 ^"}, "8\n"},
	}
	for _, tt := range tests {
		got, _, err := execute(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got, tt.args)
	}

	_, _, err := execute(t, "eval", "1 0 /")
	require.Error(t, err)
	_, _, err = execute(t, "eval")
	require.Error(t, err)
}

func TestEval_LogLevel(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "eval", "1 1 +")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=evaluated")

	_, stderr, err = execute(t, "eval", "1 1 +")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "msg=evaluated")
}

func TestPackUnpack(t *testing.T) {
	const packed = "00 00 02 80 00 00 00 00 d2 04 00 00 00 00 00 00"

	got, _, err := execute(t, "pack", "--", "-12.34")
	require.NoError(t, err)
	assert.Equal(t, packed+"\n", got)

	got, _, err = execute(t, "unpack", packed)
	require.NoError(t, err)
	assert.Equal(t, "-12.34\n", got)

	got, _, err = execute(t, "unpack", "00000200", "00000000", "d2040000", "00000000")
	require.NoError(t, err)
	assert.Equal(t, "12.34\n", got)

	for _, args := range [][]string{
		{"pack", "1..2"},
		{"unpack", "zz"},
		{"unpack", "0000"},
		{"unpack", "00 00 1d 00 00 00 00 00 00 00 00 00 00 00 00 00"},
	} {
		_, _, err := execute(t, args...)
		require.Error(t, err, args)
	}
}

func TestGenerateRun(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "records.json")

	_, stderr, err := execute(t, "generate", "-o", file, "--size", "50", "--seed", "3", "--ops", "add,div")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=\"generated records\" count=100")

	f, err := os.Open(file)
	require.NoError(t, err)
	records, err := fuzzfile.Read(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	require.Len(t, records, 100)
	assert.Equal(t, fuzzfile.OpAdd, records[0].Operator)
	assert.Equal(t, fuzzfile.OpDiv, records[1].Operator)

	got, _, err := execute(t, "run", file)
	require.NoError(t, err)
	assert.Equal(t, "100 records passed\n", got)

	records[0].Result = "1"
	records[1].Result = "2"
	tampered := filepath.Join(dir, "tampered.json")
	f, err = os.Create(tampered)
	require.NoError(t, err)
	require.NoError(t, fuzzfile.Write(f, records))
	require.NoError(t, f.Close())

	_, stderr, err = execute(t, "run", tampered)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, stderr, "failed=2")

	_, _, err = execute(t, "run", filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	_, _, err = execute(t, "generate")
	require.Error(t, err)
	_, _, err = execute(t, "generate", "-o", file, "--ops", "pow")
	require.Error(t, err)
	_, _, err = execute(t, "generate", "-o", file, "--precision", "10")
	require.Error(t, err)
}

// TestConfigFile runs last, the options of the config file stay loaded.
func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "decimalctl.yaml")
	require.NoError(t, os.WriteFile(file, []byte("format:\n  scientific: true\n"), 0o600))

	got, _, err := execute(t, "--config", file, "eval", "12.5 2 *")
	require.NoError(t, err)
	assert.Equal(t, "2.50e1\n", got)

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "eval", "1")
	require.Error(t, err)
}
