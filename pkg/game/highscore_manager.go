package game

import (
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// 存储路径
const (
	scoresObject   = "scores"
	scoresProperty = "best"
)

// HighScoreData 持久化的成绩记录
type HighScoreData struct {
	BestScore   int       `yaml:"bestScore"`
	GamesPlayed int       `yaml:"gamesPlayed"`
	TotalScore  int       `yaml:"totalScore"`
	LastPlayed  time.Time `yaml:"lastPlayed"`
}

// HighScoreManager 记录最高分
// gdataManager 为 nil 时只在内存中记录（本次运行内有效）
type HighScoreManager struct {
	gdataManager *gdata.Manager
	data         HighScoreData
	now          func() time.Time
}

// NewHighScoreManager 创建最高分管理器并加载已保存的记录
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	hm := &HighScoreManager{
		gdataManager: gdataManager,
		now:          time.Now,
	}
	if err := hm.Load(); err != nil {
		log.Printf("[HighScoreManager] Warning: %v (starting from zero)", err)
	}
	return hm
}

// Load 从存储加载记录
func (hm *HighScoreManager) Load() error {
	hm.data = HighScoreData{}
	if hm.gdataManager == nil {
		return nil
	}

	var loaded HighScoreData
	found, err := loadYAMLProp(hm.gdataManager, scoresObject, scoresProperty, &loaded)
	if err != nil {
		return err
	}
	if found {
		hm.data = loaded
		log.Printf("[HighScoreManager] Loaded: best=%d, games=%d", loaded.BestScore, loaded.GamesPlayed)
	}
	return nil
}

// RecordResult 记录一局的最终分数
//
// 返回：
//   - best: 记录后的最高分
//   - newBest: 本局是否刷新了最高分（0 分不算）
//   - error: 持久化失败；内存中的记录仍然更新
func (hm *HighScoreManager) RecordResult(score int) (int, bool, error) {
	newBest := score > hm.data.BestScore
	if newBest {
		hm.data.BestScore = score
	}
	hm.data.GamesPlayed++
	hm.data.TotalScore += score
	hm.data.LastPlayed = hm.now()

	if hm.gdataManager == nil {
		return hm.data.BestScore, newBest, nil
	}
	if err := saveYAMLProp(hm.gdataManager, scoresObject, scoresProperty, hm.data); err != nil {
		return hm.data.BestScore, newBest, err
	}
	return hm.data.BestScore, newBest, nil
}

// BestScore 当前最高分
func (hm *HighScoreManager) BestScore() int {
	return hm.data.BestScore
}

// Data 返回记录副本
func (hm *HighScoreManager) Data() HighScoreData {
	return hm.data
}

// AverageScore 平均分；没有记录时为 0
func (hm *HighScoreManager) AverageScore() float64 {
	if hm.data.GamesPlayed == 0 {
		return 0
	}
	return float64(hm.data.TotalScore) / float64(hm.data.GamesPlayed)
}
