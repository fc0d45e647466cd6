// validate_config 检查游戏配置文件
//
// 用法：
//
//	go run ./cmd/validate_config data/flowercatch.yaml
package main

import (
	"fmt"
	"os"

	"github.com/gonewx/flowercatch/pkg/config"
)

func main() {
	path := "data/flowercatch.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 配置有效: %s\n", path)
	fmt.Printf("   场景: %.0fx%.0f\n", cfg.Scene.Width, cfg.Scene.Height)
	fmt.Printf("   倒计时: %ds，生成间隔: %.1fs，下落时长: %.1fs\n",
		cfg.Session.CountdownSeconds, cfg.Session.SpawnIntervalSeconds, cfg.Session.FallDurationSeconds)

	minX, maxX := cfg.FlowerSpawnRange()
	fmt.Printf("   花朵生成范围: [%.0f, %.0f]\n", minX, maxX)

	vaseX, vaseY := cfg.VaseStart()
	fmt.Printf("   花瓶初始位置: (%.0f, %.0f)\n", vaseX, vaseY)

	// 一局最多能落下的花朵数（开局立即生成一朵）
	maxFlowers := 1 + int(float64(cfg.Session.CountdownSeconds)/cfg.Session.SpawnIntervalSeconds)
	fmt.Printf("   每局最多生成: %d 朵\n", maxFlowers)
}
