package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/koskimas/litespec/internal/config"
	"github.com/koskimas/litespec/internal/gen"
	"github.com/koskimas/litespec/internal/litespec"
	"github.com/koskimas/litespec/internal/pgddl"
	"github.com/koskimas/litespec/internal/schema"
)

const configFile = "litespec.yaml"

type Settings struct {
	WorkingDir string
	Logger     zerolog.Logger
}

func Run(s Settings) error {
	cfg, err := config.Read(filepath.Join(s.WorkingDir, configFile))
	if err != nil {
		return err
	}

	specFiles, err := resolveSpecFiles(s, *cfg)
	if err != nil {
		return err
	}

	for _, f := range specFiles {
		if err := compileFile(s, *cfg, f); err != nil {
			return fmt.Errorf(`failed to compile "%s": %w`, f, err)
		}
	}

	return nil
}

// resolveSpecFiles resolves and returns all LiteSpec file paths referenced by
// the config's spec globs.
func resolveSpecFiles(s Settings, cfg config.Config) ([]string, error) {
	files := make([]string, 0)

	for _, sp := range cfg.Specs {
		path := filepath.Join(s.WorkingDir, sp.Path)

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, fmt.Errorf(`failed to resolve spec files using glob "%s": %w`, sp.Path, err)
		}

		files = append(files, matches...)
	}

	return files, nil
}

func compileFile(s Settings, cfg config.Config, filePath string) error {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	doc, err := litespec.Compile(string(src))
	if err != nil {
		return err
	}

	name := specName(filePath)
	s.Logger.Info().Str("spec", name).Msg("compiled")

	if err := writeSchema(s, cfg, name, doc); err != nil {
		return err
	}

	if cfg.Package.Path != "" {
		if err := gen.GenerateModels(cfg, s.WorkingDir, name, doc); err != nil {
			return err
		}

		s.Logger.Info().Str("spec", name).Msg("generated model types")
	}

	if cfg.Migrations.Path != "" {
		if err := writeMigration(s, cfg, name, doc); err != nil {
			return err
		}
	}

	return nil
}

func writeSchema(s Settings, cfg config.Config, name string, doc schema.Object) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	filePath := filepath.Join(s.WorkingDir, cfg.Output.Path, name+".schema.json")

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0600)
}

func writeMigration(s Settings, cfg config.Config, name string, doc schema.Object) error {
	ddl, err := pgddl.GenerateTable(doc)
	if err != nil {
		return err
	}

	// Spec files with only defs produce no model and no table.
	if ddl == "" {
		return nil
	}

	filePath := filepath.Join(s.WorkingDir, cfg.Migrations.Path, name+".sql")

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	s.Logger.Info().Str("spec", name).Msg("generated migration")

	return os.WriteFile(filePath, []byte(ddl), 0600)
}

func specName(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
