package env

import (
	"os"
	"strconv"
	"time"
)

func Get(key string) string {
	return os.Getenv(key)
}

func GetDefault(key string, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok || len(value) == 0 {
		return defaultValue
	}
	return value
}

func GetIntDefault(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		// แปลงค่าไม่ได้ให้ใช้ค่า default แทน
		return defaultValue
	}
	return i
}

func GetDurationDefault(key string, defaultValue time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
