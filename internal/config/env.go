package config

import "os"

// EnvConfig содержит значения, приходящие из переменных окружения.
type EnvConfig struct {
	// GeminiAPIKey — ключ генеративного сервиса. Пустое значение — это
	// поддерживаемый «режим разработки» с запасным контентом, а не ошибка.
	GeminiAPIKey string
	// ServerAddr позволяет переопределить адрес HTTP API из окружения.
	ServerAddr string
}

// LoadEnvConfig читает переменные окружения. Обязательных переменных нет.
func LoadEnvConfig() EnvConfig {
	return EnvConfig{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		ServerAddr:   os.Getenv("SERVER_ADDR"),
	}
}

// MockMode сообщает, работает ли сервис без ключа генеративного сервиса.
func (e EnvConfig) MockMode() bool {
	return e.GeminiAPIKey == ""
}
