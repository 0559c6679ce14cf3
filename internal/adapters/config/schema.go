package config

// File represents the structure of the evalrs.yaml configuration file.
type File struct {
	Cache CacheDTO `yaml:"cache"`
	Cargo CargoDTO `yaml:"cargo"`
}

// CacheDTO configures the project cache.
type CacheDTO struct {
	Dir        string `yaml:"dir"`
	MaxEntries *int   `yaml:"max_entries"`
}

// CargoDTO configures the build driver.
type CargoDTO struct {
	Bin string `yaml:"bin"`
}
