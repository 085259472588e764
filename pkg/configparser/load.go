package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

var ErrNoFilePath = errors.New("no file path provided")

// LoadAndParseYaml loads the YAML file into the environment (if it exists) and then
// fills cfg from the environment using `env` and `default` struct tags.
func LoadAndParseYaml(filepath string, cfg any) error {
	if err := LoadYamlFile(filepath); err != nil && !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, ErrNoFilePath) {
		return err
	}
	return ParseEnv(cfg)
}

// LoadYamlFile reads a YAML file and loads variables into the environment
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("could not open YAML file: %w", err)
	}
	defer file.Close()

	return loadYaml(file)
}

func loadYaml(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	prefixStack := []string{}
	indentStack := []int{}

	for scanner.Scan() {
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))

		// leave every section opened at the same or deeper indentation
		for len(indentStack) > 0 && indentStack[len(indentStack)-1] >= indent {
			indentStack = indentStack[:len(indentStack)-1]
			prefixStack = prefixStack[:len(prefixStack)-1]
		}

		// section header: "name:" without a value
		if strings.HasSuffix(trimmed, ":") && !strings.Contains(trimmed, ": ") {
			prefixStack = append(prefixStack, strings.TrimSuffix(trimmed, ":"))
			indentStack = append(indentStack, indent)
			continue
		}

		parts := strings.SplitN(trimmed, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := stripComment(strings.TrimSpace(parts[1]))
		if value == "" {
			continue
		}

		value = expandDefault(strings.Trim(value, `"'`))

		fullKey := strings.ToUpper(strings.Join(append(append([]string{}, prefixStack...), key), "_"))

		// variables already present in the environment win over the file
		if os.Getenv(fullKey) != "" {
			continue
		}
		if err := os.Setenv(fullKey, value); err != nil {
			return fmt.Errorf("could not set env var %s: %w", fullKey, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading YAML file: %w", err)
	}

	return nil
}

// expandDefault resolves the ${VAR:-default} syntax
func expandDefault(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	inner := value[2 : len(value)-1]
	name, def, found := strings.Cut(inner, ":-")
	if env := os.Getenv(strings.TrimSpace(name)); env != "" {
		return env
	}
	if found {
		return strings.TrimSpace(def)
	}
	return ""
}

func stripComment(value string) string {
	if strings.HasPrefix(value, `"`) || strings.HasPrefix(value, `'`) {
		return value
	}
	if i := strings.Index(value, " #"); i >= 0 {
		return strings.TrimSpace(value[:i])
	}
	return value
}
