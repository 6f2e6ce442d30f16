package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	CMS      CMSConfig      `yaml:"cms"`
	Fallback FallbackConfig `yaml:"fallback"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// CMSConfig 는 헤드리스 CMS(Strapi) 연결 설정이다.
// Enabled 가 false 이면 게이트웨이는 네트워크 호출 없이 fallback 데이터만 사용한다.
type CMSConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	// APIToken 이 비어 있으면 Authorization 헤더를 보내지 않는다.
	APIToken string `yaml:"api_token"`

	TimeoutSeconds    int `yaml:"timeout_seconds"`
	RevalidateSeconds int `yaml:"revalidate_seconds"`

	// CountConcurrency 는 토픽별 episode/article 카운트 쿼리의 최대 동시 실행 수이다.
	CountConcurrency int `yaml:"count_concurrency"`
}

// FallbackConfig points at an optional external dataset file.
// An empty Path means the dataset embedded in the binary.
type FallbackConfig struct {
	Path string `yaml:"path"`
}

// APIBase returns the REST prefix of the CMS, e.g. http://localhost:1337/api
func (c CMSConfig) APIBase() string {
	return strings.TrimRight(c.URL, "/") + "/api"
}

var config *AppConfig

// Default returns the configuration used when no config.yaml is present.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Server:  ServerConfig{Addr: ":8080"},
		CMS: CMSConfig{
			Enabled:           false,
			URL:               "http://localhost:1337",
			TimeoutSeconds:    10,
			RevalidateSeconds: 60,
			CountConcurrency:  4,
		},
	}
}

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c := Default()

	// config.yaml 은 선택 사항이다. 없으면 기본값 + 환경변수만 사용한다.
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			panic(err)
		}
	} else if !os.IsNotExist(err) {
		panic(err)
	}

	applyEnv(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// applyEnv overrides file values with environment variables.
func applyEnv(c *AppConfig) {
	if v := os.Getenv("CMS_URL"); v != "" {
		c.CMS.URL = v
	}
	if v := os.Getenv("CMS_API_TOKEN"); v != "" {
		c.CMS.APIToken = v
	}
	if v := os.Getenv("CMS_ENABLED"); v != "" {
		// "true" 이외의 값은 모두 비활성으로 취급한다.
		c.CMS.Enabled = strings.EqualFold(strings.TrimSpace(v), "true")
	}
	if v := os.Getenv("CMS_REVALIDATE_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.CMS.RevalidateSeconds = n
		}
	}
	if v := os.Getenv("FALLBACK_PATH"); v != "" {
		c.Fallback.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
