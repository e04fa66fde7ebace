package labels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeLabels(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "labels.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadFile_PreservesOrder(t *testing.T) {
	p := writeLabels(t, `["E-waste","Glass","Organic Waste","Textiles","cardboard","metal","paper","plastic","shoes","trash"]`)
	ls, err := LoadFile(p)
	require.NoError(t, err)
	require.Len(t, ls, 10)
	require.Equal(t, "E-waste", ls[0])
	require.Equal(t, "trash", ls[9])
}

func TestLoadFile_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "labels.json"), []byte(`["a","b"]`), 0o644))
	ls, err := LoadFile("~/labels.json")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, ls)
}

func TestLoadFile_Errors(t *testing.T) {
	cases := map[string]string{
		"not json":  `{"a":1}`,
		"empty":     `[]`,
		"blank":     `["a"," "]`,
		"duplicate": `["a","b","a"]`,
	}
	for name, content := range cases {
		_, err := LoadFile(writeLabels(t, content))
		require.Error(t, err, name)
	}
	_, err := LoadFile("")
	require.Error(t, err)
	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFallback(t *testing.T) {
	ls := Fallback()
	require.Equal(t, []string{"plastic", "paper", "metal", "organic", "trash"}, ls)
	ls[0] = "changed"
	require.Equal(t, "plastic", Fallback()[0])
}
