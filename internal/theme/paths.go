package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ThemeSearchPaths returns theme search directories in precedence order.
func ThemeSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".textstyle", "themes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "textstyle", "themes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "textstyle", "themes"))
	return paths
}

// LoadThemesFromSearchPaths loads themes from search paths with first-hit
// precedence. Built-in themes fill in any name no file claimed.
func LoadThemesFromSearchPaths(projectDir string) ([]*Theme, error) {
	return loadThemesFromPaths(ThemeSearchPaths(projectDir))
}

func loadThemesFromPaths(paths []string) ([]*Theme, error) {
	seen := make(map[string]*Theme)
	order := make([]string, 0)

	for _, path := range paths {
		themes, err := LoadThemesFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, t := range themes {
			if _, exists := seen[t.Name]; exists {
				continue
			}
			seen[t.Name] = t
			order = append(order, t.Name)
		}
	}

	for _, name := range Names() {
		if _, exists := seen[name]; exists {
			continue
		}
		builtin := Themes[name]
		seen[name] = &builtin
		order = append(order, name)
	}

	resolved := make([]*Theme, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Name < resolved[j].Name
	})

	return resolved, nil
}

// Resolve finds a theme by name, checking dir first, then the search paths
// for projectDir, then the built-ins. An empty name selects Default.
func Resolve(name, dir, projectDir string) (Theme, error) {
	if name == "" {
		name = Default.Name
	}

	paths := ThemeSearchPaths(projectDir)
	if dir != "" {
		paths = append([]string{dir}, paths...)
	}

	themes, err := loadThemesFromPaths(paths)
	if err != nil {
		return Theme{}, err
	}
	for _, t := range themes {
		if t.Name == name {
			return *t, nil
		}
	}
	return Theme{}, &UnknownThemeError{Name: name}
}

// UnknownThemeError reports a theme name that matched no file or built-in.
type UnknownThemeError struct {
	Name string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q", e.Name)
}
