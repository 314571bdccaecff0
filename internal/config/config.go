package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/weft-dev/weft/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "weft.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 8080

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default publish output directory.
	DefaultOutput = "dist"
)

// Config represents the complete weft.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Server contains preview server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Publish contains publish configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// StyleSheets are stylesheet paths added to every page.
	StyleSheets []string `json:"styleSheets,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// LiveReload enables the live-reload endpoint and client script.
	LiveReload bool `json:"liveReload,omitempty"`

	// Pretty enables pretty-printed HTML output.
	Pretty bool `json:"pretty,omitempty"`
}

// PublishConfig contains publish settings.
type PublishConfig struct {
	// Output is the local output directory.
	Output string `json:"output,omitempty"`

	// S3Bucket, when set, publishes to S3 instead of the local directory.
	S3Bucket string `json:"s3Bucket,omitempty"`

	// S3Prefix is the object key prefix inside the bucket.
	S3Prefix string `json:"s3Prefix,omitempty"`

	// S3Region overrides the ambient AWS region.
	S3Region string `json:"s3Region,omitempty"`
}

// New creates a Config with defaults applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from weft.json in the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No weft.json found in " + filepath.Dir(path)).
				WithSuggestion("Create weft.json in the project root")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse weft.json: " + err.Error()).
			WithSuggestion("Check that weft.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Publish.Output == "" {
		c.Publish.Output = DefaultOutput
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E102").
			WithDetail("Port must be between 0 and 65535")
	}
	return nil
}

// ServerAddress returns the listen address for the preview server.
func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + itoa(c.Server.Port)
}

// ServerURL returns the full URL for the preview server.
func (c *Config) ServerURL() string {
	return "http://" + c.ServerAddress()
}

// OutputPath returns the absolute path to the publish output directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Publish.Output) {
		return c.Publish.Output
	}
	return filepath.Join(c.Dir(), c.Publish.Output)
}

// Exists reports whether a weft.json exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing weft.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E100").
				WithDetail("No weft.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// itoa converts int to string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
