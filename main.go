package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/flowercatch/pkg/app"
	"github.com/gonewx/flowercatch/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	mute := flag.Bool("mute", false, "关闭音频")
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Resources:  embedded.New(dataFS),
		Mute:       *mute,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Flower Catch")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Fullscreen())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
