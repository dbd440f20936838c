package models

// Setting is a single branch configuration value.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey"`
	Value string `json:"value"`
}

// defaultSettings are created on first start if they do not exist.
var defaultSettings = map[string]string{
	"national_association_name": "",
	"regional_association_name": "",
	"local_branch_name":         "",
	"president_full_name":       "",
	"backup_path":               "",
	"backup_enabled":            "false",
	"backup_frequency":          "daily",
	"adultAgeThreshold":         "18",
}
