package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

type Config struct {
	// Port Settings
	Host        string `json:"host"`        // The domain name of the server.
	ServerAddr  string `json:"serverAddr"`  // The address the server endpoint binds to.
	MetricsAddr string `json:"metricsAddr"` // Optional separate address for /metrics. Empty serves it on ServerAddr.

	// Auth is verified only. Tokens are issued by the external auth provider.
	Auth struct {
		AccessTokenSecret string `json:"accessTokenSecret"`
		Issuer            string `json:"issuer"`
	} `json:"auth"`

	Postgres struct {
		Host     string   `json:"host"`
		Port     string   `json:"port"`
		DBName   string   `json:"dbname"`
		User     string   `json:"user"`
		Password string   `json:"password"`
		SSLMode  string   `json:"sslmode"`
		TimeZone string   `json:"TimeZone"`
		Replicas []string `json:"replicas"` // Hosts of read replicas sharing the primary's credentials.
	} `json:"postgres"`

	SMTP struct {
		Enable   bool   `json:"enable"`
		Host     string `json:"host"`
		Port     string `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		Notify   string `json:"notify"` // Sender address.
	} `json:"smtp"`

	Webhook struct {
		Enable bool   `json:"enable"`
		URL    string `json:"url"`
	} `json:"webhook"`

	Views struct {
		GanttUnitHours   int    `json:"ganttUnitHours"`   // Width added to zero-width gantt bars. Defaults to 24.
		DefaultView      string `json:"defaultView"`      // Shape used when a request names none.
		CalendarMaxDays  int    `json:"calendarMaxDays"`  // Upper bound of days filled for a bounded calendar.
		StaleTimerHours  int    `json:"staleTimerHours"`  // Timers running longer are stopped by the sweep job.
		ReminderLookback int    `json:"reminderLookback"` // Days of overdue tasks included in a digest. 0 means all.
	} `json:"views"`

	CronJobs []CronJobSeed `json:"cronJobs"`
}

// CronJobSeed declares a scheduled job created on first start.
type CronJobSeed struct {
	Name    string `json:"name"`
	Spec    string `json:"spec"`
	Suspend bool   `json:"suspend"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// initConfig reads AGENCYOS_CONFIG_PATH when set, the debug config in gin debug mode,
// and the mounted config file otherwise.
func initConfig() *Config {
	config := &Config{}
	var configPath string
	switch {
	case os.Getenv("AGENCYOS_CONFIG_PATH") != "":
		configPath = os.Getenv("AGENCYOS_CONFIG_PATH")
	case IsDebugMode():
		configPath = "./etc/debug-config.yaml"
	default:
		configPath = "/etc/agencyos/config.yaml"
	}
	klog.Info("config path: ", configPath)

	err := ReadConfig(configPath, config)
	if err != nil {
		klog.Error("init config", err)
		panic(err)
	}
	config.applyDefaults()
	return config
}

func ReadConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func (c *Config) applyDefaults() {
	if c.ServerAddr == "" {
		c.ServerAddr = ":8088"
	}
	if c.Views.GanttUnitHours <= 0 {
		c.Views.GanttUnitHours = 24
	}
	if c.Views.DefaultView == "" {
		c.Views.DefaultView = "list"
	}
	if c.Views.CalendarMaxDays <= 0 {
		c.Views.CalendarMaxDays = 366
	}
	if c.Views.StaleTimerHours <= 0 {
		c.Views.StaleTimerHours = 12
	}
	if c.Postgres.TimeZone == "" {
		c.Postgres.TimeZone = "UTC"
	}
}
