// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在项目根目录（embed.go）和 mobile 包中，
// 再通过 New 包装后交给 app 使用。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// dataPrefix 嵌入资源路径必须以此开头
const dataPrefix = "data/"

// ErrNotInitialized 没有提供文件系统
var ErrNotInitialized = errors.New("embedded resources not initialized")

// Resources 嵌入资源文件系统的包装
type Resources struct {
	data fs.FS
}

// New 包装嵌入的 data 目录，data 可为 nil（所有读取都返回 ErrNotInitialized）
func New(data fs.FS) *Resources {
	return &Resources{data: data}
}

// normalize 统一路径分隔符并校验前缀
func normalize(path string) (string, error) {
	// embed.FS 使用正斜杠
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, dataPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with '%s')", path, dataPrefix)
	}
	return path, nil
}

// ReadFile 读取嵌入文件的内容
// 路径必须以 "data/" 开头
func (r *Resources) ReadFile(path string) ([]byte, error) {
	if r == nil || r.data == nil {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(r.data, path)
}

// Exists 检查文件是否存在
func (r *Resources) Exists(path string) bool {
	if r == nil || r.data == nil {
		return false
	}
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(r.data, path)
	return err == nil
}

// Glob 匹配嵌入文件
// 路径模式必须以 "data/" 开头
func (r *Resources) Glob(pattern string) ([]string, error) {
	if r == nil || r.data == nil {
		return nil, ErrNotInitialized
	}
	pattern, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(r.data, pattern)
}
