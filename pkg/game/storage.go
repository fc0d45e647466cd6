package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// OpenStorage 打开应用的跨平台存储
// 桌面端位于用户目录下，Android 上位于应用私有目录
func OpenStorage(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage for %s: %w", appName, err)
	}
	return m, nil
}

// loadYAMLProp 读取 object/prop 并反序列化到 out
// 返回 false 表示数据不存在（out 保持不变）
func loadYAMLProp(m *gdata.Manager, object, prop string, out any) (bool, error) {
	if !m.ObjectPropExists(object, prop) {
		return false, nil
	}

	data, err := m.LoadObjectProp(object, prop)
	if err != nil {
		return false, fmt.Errorf("failed to load %s/%s: %w", object, prop, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s/%s: %w", object, prop, err)
	}
	return true, nil
}

// saveYAMLProp 序列化 v 并写入 object/prop
func saveYAMLProp(m *gdata.Manager, object, prop string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", object, prop, err)
	}
	if err := m.SaveObjectProp(object, prop, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", object, prop, err)
	}
	return nil
}
