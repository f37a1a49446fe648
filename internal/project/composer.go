// Package project inspects the PHP application repogen is run against.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ComposerInfo is what repogen needs from composer.json
type ComposerInfo struct {
	ConfigPath string // Path to composer.json
	Name       string // Package name (e.g., "laravel/laravel")
	Namespace  string // Root PSR-4 namespace without trailing separator (e.g., "App")
	AppPath    string // Directory mapped to Namespace (e.g., "app")
}

// IsLaravelProject checks if a directory contains an artisan script
func IsLaravelProject(fsys afero.Fs, rootPath string) bool {
	found, err := afero.Exists(fsys, filepath.Join(rootPath, "artisan"))
	return err == nil && found
}

// DetectComposer reads composer.json and picks the application's PSR-4
// root. Returns (nil, nil) when there is no composer.json.
//
// The mapping pointing at app/ wins; otherwise the alphabetically first
// namespace is used, which keeps the choice stable across runs.
func DetectComposer(fsys afero.Fs, rootPath string) (*ComposerInfo, error) {
	configPath := filepath.Join(rootPath, "composer.json")
	data, err := afero.ReadFile(fsys, configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read composer.json: %w", err)
	}

	var composer struct {
		Name     string `json:"name"`
		Autoload struct {
			PSR4 map[string]json.RawMessage `json:"psr-4"`
		} `json:"autoload"`
	}
	if err := json.Unmarshal(data, &composer); err != nil {
		return nil, fmt.Errorf("failed to parse composer.json: %w", err)
	}

	info := &ComposerInfo{ConfigPath: configPath, Name: composer.Name}

	namespaces := make([]string, 0, len(composer.Autoload.PSR4))
	for ns := range composer.Autoload.PSR4 {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	for _, ns := range namespaces {
		dir, ok := firstPath(composer.Autoload.PSR4[ns])
		if !ok {
			continue
		}
		if info.Namespace == "" || dir == "app" {
			info.Namespace = strings.Trim(ns, `\`)
			info.AppPath = dir
		}
		if dir == "app" {
			break
		}
	}

	return info, nil
}

// firstPath decodes a PSR-4 target, which composer allows to be a string
// or a list of strings.
func firstPath(raw json.RawMessage) (string, bool) {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return cleanDir(single)
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		return cleanDir(many[0])
	}
	return "", false
}

func cleanDir(dir string) (string, bool) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", false
	}
	dir = filepath.Clean(filepath.FromSlash(dir))
	if dir == "." {
		return "", false
	}
	return dir, true
}
