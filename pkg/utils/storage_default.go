//go:build !android

package utils

// EnsureStorageDir 非 Android 平台无需准备，gdata 会自行创建目录
func EnsureStorageDir() error {
	return nil
}

// StoragePath 存储根目录，非 Android 平台由 gdata 决定，返回空字符串
func StoragePath() string {
	return ""
}
