package internal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/kballard/go-shellquote"
)

// DefaultPackageManager is assumed when the invoking manager is unknown.
const DefaultPackageManager = "npm"

// PackageManager identifies the tool that invoked us.
type PackageManager struct {
	Name    string
	Version string
}

// ParseUserAgent parses an npm_config_user_agent value such as
// "pnpm/8.6.0 npm/? node/v18.16.0 darwin x64". The second result is false
// when userAgent is empty.
func ParseUserAgent(userAgent string) (PackageManager, bool) {
	if userAgent == "" {
		return PackageManager{}, false
	}
	spec := strings.SplitN(userAgent, " ", 2)[0]
	parts := strings.Split(spec, "/")
	pm := PackageManager{Name: parts[0]}
	if len(parts) > 1 {
		pm.Version = parts[1]
	}
	return pm, true
}

// DetectPackageManager falls back to DefaultPackageManager for an unknown
// user agent.
func DetectPackageManager(userAgent string) PackageManager {
	if pm, ok := ParseUserAgent(userAgent); ok {
		return pm
	}
	return PackageManager{Name: DefaultPackageManager}
}

// yarn1Range admits 1.x releases and their prereleases.
var yarn1Range = mustConstraint(">= 1.0.0-0, < 2.0.0-0")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// IsYarn1 reports whether pm is a Yarn 1.x release. Loose versions such as
// "v1.22.19", "1.22" or "1" are accepted; anything semver cannot parse is matched
// on its "1." prefix.
func (pm PackageManager) IsYarn1() bool {
	if pm.Name != "yarn" {
		return false
	}
	v, err := semver.NewVersion(pm.Version)
	if err != nil {
		return strings.HasPrefix(pm.Version, "1.")
	}
	return yarn1Range.Check(v)
}

var (
	npmCreatePrefix = regexp.MustCompile(`^npm create`)
	npmExecPrefix   = regexp.MustCompile(`^npm exec`)
)

// TranslateCommand rewrites a delegated command written for npm into the
// dialect of pm.
func (pm PackageManager) TranslateCommand(command string) string {
	yarn1 := pm.IsYarn1()

	command = npmCreatePrefix.ReplaceAllLiteralString(command, pm.Name+" create")
	// Only Yarn 1.x doesn't support `@version` in the `create` command.
	if yarn1 {
		command = strings.Replace(command, "@latest", "", 1)
	}

	exec := "npm exec"
	switch {
	case pm.Name == "pnpm":
		exec = "pnpm dlx"
	case pm.Name == "yarn" && !yarn1:
		exec = "yarn dlx"
	}
	return npmExecPrefix.ReplaceAllLiteralString(command, exec)
}

// BuildCustomCommand turns a delegated command template into an executable
// name and arguments for pm. The target directory is substituted after
// splitting because it may contain spaces.
func (pm PackageManager) BuildCustomCommand(command string, targetDir string) (string, []string, error) {
	words, err := shellquote.Split(pm.TranslateCommand(command))
	if err != nil {
		return "", nil, fmt.Errorf("cannot parse command %q: %w", command, err)
	}
	if len(words) == 0 {
		return "", nil, fmt.Errorf("empty command")
	}
	args := make([]string, 0, len(words)-1)
	for _, arg := range words[1:] {
		args = append(args, strings.Replace(arg, TargetDirPlaceholder, targetDir, 1))
	}
	return words[0], args, nil
}

// NextSteps returns the install and dev commands for pm.
func (pm PackageManager) NextSteps() []string {
	if pm.Name == "yarn" {
		return []string{"yarn", "yarn dev"}
	}
	return []string{pm.Name + " install", pm.Name + " run dev"}
}
