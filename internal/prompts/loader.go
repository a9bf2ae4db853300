// Package prompts provides a loader for externalized LLM prompt templates.
// Templates are stored as plain-text files and embedded at compile time.
package prompts

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.tmpl
var promptFiles embed.FS

// Get retrieves a prompt template by name (the filename without extension,
// e.g. "analyze_cv"). Returns an error if the template does not exist.
func Get(name string) (string, error) {
	data, err := promptFiles.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("prompt template %q not found: %w", name, err)
	}
	return string(data), nil
}

// MustGet retrieves a prompt template by name, panicking if not found.
// Use this for templates that are required at initialization time.
func MustGet(name string) string {
	template, err := Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format replaces template placeholders in the form {{.Key}} with values from
// data. This is a simple template system for prompt customization; literal
// braces in embedded JSON examples pass through untouched.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
