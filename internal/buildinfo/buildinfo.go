// Package buildinfo exposes the package manifest of the module at runtime.
// Version can be overridden at link time:
//
//	go build -ldflags "-X github.com/askiada/go-dsa/internal/buildinfo.rawVersion=v0.2.0"
package buildinfo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Name is the command and package identifier.
const Name = "dsa"

// Distribution is the identifier the project is published under.
const Distribution = "dsa-python"

// Raw variables populated by ldflags.
var (
	rawVersion = "0.1.0"
)

// Version is the validated version, without a leading "v".
var Version string

var semverRegex = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

func init() {
	version, err := parseVersion(rawVersion)
	if err != nil {
		panic(fmt.Sprintf("buildinfo: %v", err))
	}

	Version = version
}

// parseVersion strips a leading "v" and checks the rest is "dev" or semver.
func parseVersion(raw string) (string, error) {
	version := strings.TrimPrefix(raw, "v")
	if version == "dev" || semverRegex.MatchString(version) {
		return version, nil
	}

	return "", errors.Errorf("invalid version %q", raw)
}

// Tool is a development dependency with its minimum version.
type Tool struct {
	Name       string
	Purpose    string
	MinVersion string
}

// Info is the package manifest.
type Info struct {
	Name         string
	Distribution string
	Version      string
	Packages     []string
	Tooling      []Tool
}

// Packages lists the public member packages of the module.
func Packages() []string {
	return []string{
		"github.com/askiada/go-dsa/pkg/disjointset",
		"github.com/askiada/go-dsa/pkg/drawer",
		"github.com/askiada/go-dsa/pkg/greedy",
		"github.com/askiada/go-dsa/pkg/heap",
		"github.com/askiada/go-dsa/pkg/measure",
	}
}

// Tooling lists the test runner, formatter and type checker the module is developed with.
func Tooling() []Tool {
	return []Tool{
		{Name: "go test + testify", Purpose: "test runner", MinVersion: "1.24"},
		{Name: "gofmt", Purpose: "code formatter", MinVersion: "1.24"},
		{Name: "go build", Purpose: "static type checker", MinVersion: "1.24"},
	}
}

// Manifest returns the package manifest.
func Manifest() Info {
	return Info{
		Name:         Name,
		Distribution: Distribution,
		Version:      Version,
		Packages:     Packages(),
		Tooling:      Tooling(),
	}
}

// String renders the manifest as "name version".
func (i Info) String() string {
	return i.Name + " " + i.Version
}

// ToolNames returns the names of the tooling dependencies.
func (i Info) ToolNames() []string {
	return lo.Map(i.Tooling, func(t Tool, _ int) string { return t.Name })
}
