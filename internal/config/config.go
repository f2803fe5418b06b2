package config

// Config holds build settings. It is populated by viper in cmd from
// config.yaml, environment variables, and defaults.
type Config struct {
	OutputDir   string `mapstructure:"outputDir"`
	BaseURL     string `mapstructure:"baseURL"`
	ContentFile string `mapstructure:"contentFile"`
	CitiesFile  string `mapstructure:"citiesFile"`
	ImageFile   string `mapstructure:"imageFile"`
	PagesDir    string `mapstructure:"pagesDir"`
}
