package signal

// emotionSentiment maps a normalized primary emotion word to a -1..1
// sentiment score. Words not in the table read as neutral (0); that is
// different from "no check-in", which yields no score at all.
var emotionSentiment = map[string]float64{
	"happy":     1,
	"excited":   0.9,
	"energetic": 0.8,
	"content":   0.7,
	"calm":      0.5,
	"peaceful":  0.6,
	"relieved":  0.7,
	"hopeful":   0.6,

	"neutral": 0,
	"focused": 0.3,

	"tired":     -0.3,
	"drained":   -0.4,
	"exhausted": -0.5,

	"sad":       -0.7,
	"depressed": -0.9,
	"unhappy":   -0.8,

	"stressed":    -0.6,
	"anxious":     -0.7,
	"overwhelmed": -0.8,
	"panicked":    -0.9,

	"irritable":  -0.5,
	"angry":      -0.8,
	"frustrated": -0.6,
	"burnt_out":  -0.9,
}

// EmotionSentiment scores a primary emotion word. Unrecognized words map to
// neutral (0); callers distinguish "neutral reported" from "nothing reported"
// by not calling this when no check-in exists.
func EmotionSentiment(word string) float64 {
	return emotionSentiment[NormalizeEmotion(word)]
}
