package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maine/historical_times/internal/press"
)

type (
	// Root объединяет все конфигурационные блоки.
	Root struct {
		Newspaper Newspaper `yaml:"newspaper"`
		Gemini    Gemini    `yaml:"gemini"`
		Server    Server    `yaml:"server"`
	}

	// Newspaper описывает параметры самого издания.
	Newspaper struct {
		YearsBack  int                        `yaml:"years_back"`
		Categories []press.CategoryDefinition `yaml:"categories"`
		ArchiveDir string                     `yaml:"archive_dir"`
	}

	// Gemini содержит имена моделей для каждой операции шлюза.
	Gemini struct {
		ModelResearch string `yaml:"model_research"`
		ModelContext  string `yaml:"model_context"`
		ModelFootage  string `yaml:"model_footage"`
	}

	// Server — настройки HTTP API.
	Server struct {
		Addr        string   `yaml:"addr"`
		CORSOrigins []string `yaml:"cors_origins"`
	}
)

// Default возвращает конфигурацию, с которой сервис работает без файла.
func Default() Root {
	return Root{
		Newspaper: Newspaper{
			YearsBack:  100,
			Categories: press.DefaultCategories(),
			ArchiveDir: "archive",
		},
		Gemini: Gemini{
			ModelResearch: "gemini-2.5-flash",
			ModelContext:  "gemini-2.5-flash",
			ModelFootage:  "veo-2.0-generate-001",
		},
		Server: Server{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
	}
}

// LoadRoot читает основной файл конфигурации. Отсутствующий файл — не ошибка:
// возвращаются значения по умолчанию. Пропущенные в файле поля добиваются
// значениями по умолчанию.
func LoadRoot(path string) (Root, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Root{}, fmt.Errorf("read config: %w", err)
	}

	var fileCfg Root
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return Root{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return merge(cfg, fileCfg), nil
}

func merge(base, override Root) Root {
	if override.Newspaper.YearsBack > 0 {
		base.Newspaper.YearsBack = override.Newspaper.YearsBack
	}
	if len(override.Newspaper.Categories) > 0 {
		base.Newspaper.Categories = override.Newspaper.Categories
	}
	if override.Newspaper.ArchiveDir != "" {
		base.Newspaper.ArchiveDir = override.Newspaper.ArchiveDir
	}
	if override.Gemini.ModelResearch != "" {
		base.Gemini.ModelResearch = override.Gemini.ModelResearch
	}
	if override.Gemini.ModelContext != "" {
		base.Gemini.ModelContext = override.Gemini.ModelContext
	}
	if override.Gemini.ModelFootage != "" {
		base.Gemini.ModelFootage = override.Gemini.ModelFootage
	}
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if len(override.Server.CORSOrigins) > 0 {
		base.Server.CORSOrigins = override.Server.CORSOrigins
	}
	return base
}
