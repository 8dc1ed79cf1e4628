// Package config provides configuration types, defaults, and persistence for nacre.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveSources updates the sources list in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveSources(configPath string, sources []string) error {
	// Read existing file content
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	sourcesNode := buildSourcesNode(sources)

	// Update or create the sources section
	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "sources"},
						sourcesNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			// Find and replace sources key, or append it
			found := false
			for i := 0; i < len(root.Content)-1; i += 2 {
				if root.Content[i].Value == "sources" {
					root.Content[i+1] = sourcesNode
					found = true
					break
				}
			}
			if !found {
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: "sources"},
					sourcesNode,
				)
			}
		}
	}

	// Marshal back to YAML
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	// Write atomically (write to temp, then rename)
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".nacre.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(buf.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// AddSource appends a source path to the config and saves.
// Adding a path that is already present is a no-op.
func AddSource(configPath, source string, existing []string) error {
	for _, src := range existing {
		if src == source {
			return nil
		}
	}
	return SaveSources(configPath, append(existing, source))
}

// RemoveSource deletes a source path from the config and saves.
// Returns an error if the path is not present.
func RemoveSource(configPath, source string, existing []string) error {
	updated := make([]string, 0, len(existing))
	found := false
	for _, src := range existing {
		if src == source {
			found = true
			continue
		}
		updated = append(updated, src)
	}
	if !found {
		return fmt.Errorf("source %q not configured", source)
	}
	return SaveSources(configPath, updated)
}

// buildSourcesNode creates a yaml.Node representing the sources list.
func buildSourcesNode(sources []string) *yaml.Node {
	node := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Content: make([]*yaml.Node, 0, len(sources)),
	}
	for _, src := range sources {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: src})
	}
	return node
}
