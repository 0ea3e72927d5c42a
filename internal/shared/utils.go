package shared

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[^\w\- ()]`)
)

// SanitizeFileName cleans a track title so it is safe for use as a file or
// directory name. Keeps letters, digits, spaces, dashes, underscores and
// parentheses; collapses whitespace runs into single spaces.
func SanitizeFileName(name string) string {
	result := whitespaceRun.ReplaceAllString(name, " ")
	result = unsafeChars.ReplaceAllString(result, "")
	result = strings.TrimSpace(whitespaceRun.ReplaceAllString(result, " "))
	if result == "" {
		return "yt_download"
	}
	return result
}

// GetUserInput prompts the user for input with a default value
func GetUserInput(prompt, defaultValue string) string {
	if defaultValue != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, defaultValue)
	}
	ColorPrompt.Print(prompt + ": ")
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" && defaultValue != "" {
			return defaultValue
		}
		return input
	}
	return defaultValue
}

// FileExists checks if a file exists at the given path
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CreateDirIfNotExists creates a directory if it does not exist
func CreateDirIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// TruncateString truncates a string to the specified length, adding ellipsis if truncated.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
