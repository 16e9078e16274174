package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/projectparaiba/paraiba/schema"
)

// StdinPath is the path argument that reads candidates from standard input.
const StdinPath = "-"

// candidateFile is the wrapped document form: {"candidates": [...]}.
type candidateFile struct {
	Candidates []schema.Candidate `json:"candidates" yaml:"candidates"`
}

// LoadCandidates reads candidates from a JSON or YAML file, or from stdin
// when path is "-". The document is either a list of candidate objects or
// an object with a "candidates" list.
func LoadCandidates(path string) ([]schema.Candidate, error) {
	var (
		data []byte
		err  error
	)
	if path == StdinPath {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	if isYAMLPath(path) {
		return DecodeYAMLCandidates(data)
	}
	if path == StdinPath && !looksLikeJSON(data) {
		return DecodeYAMLCandidates(data)
	}
	return DecodeJSONCandidates(data)
}

// DecodeJSONCandidates parses a JSON candidate document.
func DecodeJSONCandidates(data []byte) ([]schema.Candidate, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("candidate document is empty")
	}

	if trimmed[0] == '{' {
		var doc candidateFile
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON candidates: %w", err)
		}
		return doc.Candidates, nil
	}

	var list []schema.Candidate
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("failed to parse JSON candidates: %w", err)
	}
	return list, nil
}

// DecodeYAMLCandidates parses a YAML candidate document.
func DecodeYAMLCandidates(data []byte) ([]schema.Candidate, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML candidates: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, errors.New("candidate document is empty")
	}

	doc := root.Content[0]
	if doc.Kind == yaml.MappingNode {
		var wrapped candidateFile
		if err := doc.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("failed to parse YAML candidates: %w", err)
		}
		return wrapped.Candidates, nil
	}

	var list []schema.Candidate
	if err := doc.Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to parse YAML candidates: %w", err)
	}
	return list, nil
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{')
}
