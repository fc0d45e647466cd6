// simulate 在无窗口环境中运行若干局接花游戏
//
// 用法：
//
//	go run ./cmd/simulate -rounds 5 -seed 1 -bot follow
//
// bot=follow 时花瓶每帧向最低的一朵花移动（受最大速度限制），
// bot=idle 时花瓶保持不动。用于检查生成节奏与配置的可玩性。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/config"
	"github.com/gonewx/flowercatch/pkg/ecs"
	"github.com/gonewx/flowercatch/pkg/scheduler"
	"github.com/gonewx/flowercatch/pkg/session"
	"github.com/gonewx/flowercatch/pkg/systems"
)

const frameTime = 1.0 / 60.0

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件（默认使用内置默认值）")
	rounds     = flag.Int("rounds", 3, "模拟局数")
	seed       = flag.Int64("seed", 1, "随机种子")
	bot        = flag.String("bot", "follow", "花瓶策略: follow | idle")
	maxSpeed   = flag.Float64("speed", 12, "follow 策略每帧最大移动距离（像素）")
)

// roundStats 一局的统计
type roundStats struct {
	score   int
	spawned int
	caught  int
	missed  int
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *bot != "follow" && *bot != "idle" {
		fmt.Fprintf(os.Stderr, "❌ 未知策略: %s\n", *bot)
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(*seed))
	total := 0
	for i := 1; i <= *rounds; i++ {
		stats := runRound(*cfg, rng)
		total += stats.score
		fmt.Printf("第 %d 局: 得分 %d（生成 %d，接住 %d，漏掉 %d）\n",
			i, stats.score, stats.spawned, stats.caught, stats.missed)
	}
	if *rounds > 0 {
		fmt.Printf("平均得分: %.2f\n", float64(total)/float64(*rounds))
	}
}

// runRound 用帧调度器驱动一局直到结束
func runRound(cfg config.GameConfig, rng *rand.Rand) roundStats {
	em := ecs.NewEntityManager()
	sched := scheduler.NewFrameScheduler()
	var stats roundStats

	gs := session.New(cfg,
		session.WithEntityManager(em),
		session.WithScheduler(sched),
		session.WithRand(rng),
		session.WithListener(session.ListenerFunc(func(e session.Event) {
			switch e.Kind {
			case session.EventFlowerSpawned:
				stats.spawned++
			case session.EventFlowerCaught:
				stats.caught++
			case session.EventFlowerMissed:
				stats.missed++
			}
		})),
	)

	fallSystem := systems.NewFallSystem(em)
	contactSystem := systems.NewContactSystem(em, cfg.Scene.Width, cfg.Scene.Height)
	contactSystem.SetHandler(gs.OnContact)

	gs.Start()
	for gs.IsRunning() {
		if *bot == "follow" {
			followLowestFlower(gs, em)
		}
		sched.Update(frameTime)
		fallSystem.Update(frameTime)
		contactSystem.Update(frameTime)
		em.RemoveMarkedEntities()
	}

	stats.score = gs.Score()
	return stats
}

// followLowestFlower 把花瓶移向最接近底部的花朵
func followLowestFlower(gs *session.GameSession, em *ecs.EntityManager) {
	var target *components.PositionComponent
	for _, id := range gs.Flowers() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		if target == nil || pos.Y > target.Y {
			target = pos
		}
	}
	if target == nil {
		return
	}

	vaseX, _ := gs.VasePosition()
	dx := target.X - vaseX
	dx = math.Max(-*maxSpeed, math.Min(*maxSpeed, dx))
	if dx != 0 {
		gs.OnDrag(dx)
	}
}
