//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// androidDataRoot 应用私有数据目录的上级
const androidDataRoot = "/data/data"

// EnsureStorageDir 在打开 gdata 之前创建并检查 Android 存档目录
// gdata 使用 /data/data/{package}/ 但不会预先创建子目录
func EnsureStorageDir() error {
	root := StoragePath()
	if root == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	savesDir := filepath.Join(root, "saves")
	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	return os.Remove(probe)
}

// StoragePath 应用私有目录，包名取自 /proc/self/cmdline
func StoragePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一个字段即包名
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	pkg := string(bytes.TrimSpace(data))
	if pkg == "" {
		return ""
	}
	return filepath.Join(androidDataRoot, pkg)
}
