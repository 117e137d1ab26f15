// =============================================================================
// Quote Scraper - File Manager Utility
// =============================================================================
//
// This module provides the file system helpers used by the scraper:
//   - Document discovery in the input folder (non-recursive)
//   - Output path resolution for the exported files
//   - Directory management for the output location
//
// DISCOVERY ORDER:
//   Entries are returned in directory-listing order (sorted by name), which
//   is also the order records appear in the exported table.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the scraper.
type FileManager struct {
	// InputDir is the folder containing the quote documents.
	InputDir string

	// OutputDir is where the exported files are written.
	OutputDir string
}

// NewFileManager creates a new FileManager. An empty outputDir writes the
// exports next to the input documents.
func NewFileManager(inputDir, outputDir string) *FileManager {
	if outputDir == "" {
		outputDir = inputDir
	}
	return &FileManager{
		InputDir:  inputDir,
		OutputDir: outputDir,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureOutputDir creates the output directory if it doesn't exist.
func (fm *FileManager) EnsureOutputDir() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverDocuments lists the files in the input folder whose name matches
// the pattern.
//
// PARAMETERS:
//   - pattern: A glob pattern matched against the lowercased file name
//              (e.g., "*.pdf"). If empty, defaults to "*.pdf".
//
// RETURNS:
//   - A slice of file paths sorted by file name.
//   - An error if the folder cannot be read or the pattern is malformed.
func (fm *FileManager) DiscoverDocuments(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.pdf"
	}
	pattern = strings.ToLower(pattern)

	entries, err := os.ReadDir(fm.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	var result []string
	for _, entry := range entries {
		// Skip directories.
		if entry.IsDir() {
			continue
		}

		matched, err := filepath.Match(pattern, strings.ToLower(entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
		if matched {
			result = append(result, filepath.Join(fm.InputDir, entry.Name()))
		}
	}

	return result, nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// OutputPath joins a file name onto the output directory.
func (fm *FileManager) OutputPath(fileName string) string {
	return filepath.Join(fm.OutputDir, fileName)
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
