package entities

import "sort"

// Mood is the self-reported state attached to an entry
type Mood string

// Legacy moods
const (
	MoodContemplative Mood = "contemplative"
	MoodInspired      Mood = "inspired"
	MoodConfused      Mood = "confused"
	MoodSeeking       Mood = "seeking"
)

// Theme moods
const (
	MoodHappy      Mood = "happy"
	MoodCalm       Mood = "calm"
	MoodReflective Mood = "reflective"
	MoodEnergetic  Mood = "energetic"
	MoodGrateful   Mood = "grateful"
	MoodAnxious    Mood = "anxious"
	MoodSad        Mood = "sad"
	MoodExcited    Mood = "excited"
)

// MoodUnspecified is the bucket used when aggregating entries without a mood
const MoodUnspecified = "unspecified"

var moodContexts = map[Mood]string{
	MoodContemplative: "The speaker is contemplative, turning the experience over slowly and thoughtfully. Keep that introspective, searching quality.",
	MoodInspired:      "The speaker feels inspired and energized. Let the monologue carry a sense of possibility and discovery.",
	MoodConfused:      "The speaker is working through confusion. Honor the uncertainty while finding the small moments of clarity inside it.",
	MoodSeeking:       "The speaker is searching for answers. Frame the thoughts as steps on a meaningful journey toward understanding.",
	MoodHappy:         "The speaker is happy. Let warmth and lightness come through without turning it saccharine.",
	MoodCalm:          "The speaker is calm and settled. Keep the pacing unhurried and the language still.",
	MoodReflective:    "The speaker is in a reflective state, looking back to make sense of what happened.",
	MoodEnergetic:     "The speaker is full of energy. Give the monologue momentum and forward motion.",
	MoodGrateful:      "The speaker feels grateful. Let appreciation surface naturally in what they notice.",
	MoodAnxious:       "The speaker is anxious. Acknowledge the tension gently and leave room for steadiness.",
	MoodSad:           "The speaker is sad. Treat the feeling with tenderness and do not rush toward resolution.",
	MoodExcited:       "The speaker is excited about what is ahead. Capture anticipation and a quickened pulse.",
}

// IsValid reports whether m is empty or one of the accepted moods
func (m Mood) IsValid() bool {
	if m == "" {
		return true
	}
	_, ok := moodContexts[m]
	return ok
}

// PromptContext returns the sentence describing the mood to the rewrite model
func (m Mood) PromptContext() string {
	return moodContexts[m]
}

// AllMoods lists every accepted mood in alphabetical order
func AllMoods() []Mood {
	moods := make([]Mood, 0, len(moodContexts))
	for m := range moodContexts {
		moods = append(moods, m)
	}
	sort.Slice(moods, func(i, j int) bool { return moods[i] < moods[j] })
	return moods
}
