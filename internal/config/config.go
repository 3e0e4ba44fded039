package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerAddress string
	ProjectID     string
	PhotoBucket   string

	// Secret Manager ids for the three startup secrets.
	FirebaseKeySecret    string
	FirebaseConfigSecret string
	StorageKeySecret     string
	SecretVersion        string

	MaxUploadSizeMB int64
}

func Load() *Config {
	return &Config{
		ServerAddress:        getEnv("SERVER_ADDRESS", ":"+getEnv("PORT", "8000")),
		ProjectID:            getEnv("GCP_PROJECT_ID", "capstone-scancare-406911"),
		PhotoBucket:          getEnv("PHOTO_BUCKET", "scancare_user_profile"),
		FirebaseKeySecret:    getEnv("FIREBASE_SAK_SECRET", "firebase_sak"),
		FirebaseConfigSecret: getEnv("FIREBASE_CONFIG_SECRET", "firebase_config"),
		StorageKeySecret:     getEnv("STORAGE_SAK_SECRET", "scancare-user-profile_bucket_sak"),
		SecretVersion:        getEnv("SECRET_VERSION", "1"),
		MaxUploadSizeMB:      getEnvInt64("MAX_UPLOAD_SIZE_MB", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
