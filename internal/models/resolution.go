package models

import "time"

// Resolution stage constants, in priority order.
const (
	StageContribution = "contribution"
	StageKeyword      = "keyword"
	StageLLM          = "llm"
	StageGeneric      = "generic"
	StageFallback     = "fallback"
)

// UltimateFallback is returned when nothing else produced a phrase.
const UltimateFallback = "Keep the energy flowing"

// StageLookup is a per-category hit count by resolution stage.
type StageLookup struct {
	Category   string
	Stage      string
	Count      int64
	LastSeenAt time.Time
}
