package buildinfo

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest(t *testing.T) {
	t.Parallel()

	info := Manifest()
	assert.Equal(t, "dsa", info.Name)
	assert.Equal(t, "dsa-python", info.Distribution)
	assert.Equal(t, "0.1.0", info.Version)
	assert.Equal(t, "dsa 0.1.0", info.String())
	assert.Contains(t, info.Packages, "github.com/askiada/go-dsa/pkg/greedy")
	require.Len(t, info.Tooling, 3)
	assert.Equal(t, []string{"test runner", "code formatter", "static type checker"},
		[]string{info.Tooling[0].Purpose, info.Tooling[1].Purpose, info.Tooling[2].Purpose})
	assert.Equal(t, []string{"go test + testify", "gofmt", "go build"}, info.ToolNames())
}

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		raw      string
		expected string
		wantErr  bool
	}{
		"plain":      {raw: "0.1.0", expected: "0.1.0"},
		"prefixed":   {raw: "v1.2.3", expected: "1.2.3"},
		"prerelease": {raw: "1.0.0-rc.1+build.5", expected: "1.0.0-rc.1+build.5"},
		"dev":        {raw: "dev", expected: "dev"},
		"garbage":    {raw: "latest", wantErr: true},
		"partial":    {raw: "1.2", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := parseVersion(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPackagesMatchTree(t *testing.T) {
	t.Parallel()

	root := filepath.Join("..", "..")
	found := make([]string, 0)

	err := filepath.WalkDir(filepath.Join(root, "pkg"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == "testdata" {
			return filepath.SkipDir
		}
		if d.IsDir() || filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		found = append(found, "github.com/askiada/go-dsa/"+filepath.ToSlash(rel))

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, lo.Uniq(found), Packages())
}
