//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按移动端处理（本地调试触摸流程）
const MobileEmulateEnv = "FLOWERCATCH_MOBILE_EMULATE"

// IsMobile 当前是否按移动设备运行
// 移动端没有窗口，不处理全屏快捷键
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
