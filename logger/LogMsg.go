package logger

const MatchSetupMsg = "新比賽開始！match id: %s"
const PlayerQuitMsg = "玩家按下離開 match id: %s"
const RunStateChangedMsg = "比賽狀態切換 match id: %s, state: %s"

const PlayerScoredMsg = "%s 得分！目前比分 %d : %d"
const PaddleHitMsg = "%s 擊球，球速 (%.3f, %.3f)"

const AudioUnavailableMsg = "無法開啟音效裝置，改為靜音模式：%v"
const FrontendStartMsg = "啟動畫面 frontend: %s, env: %s"
