package models

// BasicMetrics is the legacy metrics shape returned by the plain
// transcript-analysis endpoint: word count, spoken duration, pace, and a
// single filler total over the generic filler superset.
type BasicMetrics struct {
	WordCount   int     `json:"word_count"`
	DurationSec float64 `json:"duration_sec"`
	WPM         float64 `json:"wpm"`
	Filler      int     `json:"filler"`
}

// CategoryMatch summarizes one lexical category: how often it matched, how
// often per minute of speech, and up to five distinct example matches.
type CategoryMatch struct {
	Count         int      `json:"count"`
	RatePerMinute float64  `json:"rate_per_minute"`
	Examples      []string `json:"examples,omitempty"`
}

type FillerAnalysis struct {
	HesitationFillers   CategoryMatch `json:"hesitation_fillers"`
	DiscourseMarkers    CategoryMatch `json:"discourse_markers"`
	TotalFillers        int           `json:"total_fillers"`
	FillerRatePerMinute float64       `json:"filler_rate_per_minute"`
}

// VocabularyUsage reports density per hundred words rather than per minute.
type VocabularyUsage struct {
	Count    int      `json:"count"`
	Density  float64  `json:"density"`
	Examples []string `json:"examples,omitempty"`
}

type LanguageConfidence struct {
	ProfessionalVocabulary VocabularyUsage `json:"professional_vocabulary"`
	WeakLanguageIndicators VocabularyUsage `json:"weak_language_indicators"`
	Intensifiers           VocabularyUsage `json:"intensifiers"`
}

type PaceAnalysis struct {
	WPM            float64 `json:"wpm"`
	Category       string  `json:"category"`
	Recommendation string  `json:"recommendation"`
}

type EnergyAnalysis struct {
	ExclamationCount    int     `json:"exclamation_count"`
	HighEnergyWordCount int     `json:"high_energy_word_count"`
	EngagementPhrases   int     `json:"engagement_phrases"`
	QuestionCount       int     `json:"question_count"`
	EnergyDensity       float64 `json:"energy_density"`
	EnergyLevel         string  `json:"energy_level"`
}

type RepeatedWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type ClarityAnalysis struct {
	ComplexWordCount int            `json:"complex_word_count"`
	ComplexityRatio  float64        `json:"complexity_ratio"`
	RepeatedWords    []RepeatedWord `json:"repeated_words,omitempty"`
}

type SentenceDistribution struct {
	Short  int `json:"short"`
	Medium int `json:"medium"`
	Long   int `json:"long"`
}

type SentenceVariety struct {
	SentenceCount  int                  `json:"sentence_count"`
	AvgLength      float64              `json:"avg_length"`
	VarietyScore   float64              `json:"variety_score"`
	Interpretation string               `json:"interpretation"`
	Distribution   SentenceDistribution `json:"distribution"`
}

type SpeechPatterns struct {
	PaceAnalysis    PaceAnalysis    `json:"pace_analysis"`
	EnergyLevels    EnergyAnalysis  `json:"energy_levels"`
	ClarityMetrics  ClarityAnalysis `json:"clarity_metrics"`
	SentenceVariety SentenceVariety `json:"sentence_variety"`
}

type ConfidenceScore struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

type OverallQuality struct {
	OverallScore float64 `json:"overall_score"`
	Grade        string  `json:"grade"`
	Description  string  `json:"description"`
	PaceScore    float64 `json:"pace_score"`
	FillerScore  float64 `json:"filler_score"`
}

type ProfessionalReadiness struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

type PresentationScores struct {
	ConfidenceScore       ConfidenceScore       `json:"confidence_score"`
	OverallQuality        OverallQuality        `json:"overall_quality"`
	ProfessionalReadiness ProfessionalReadiness `json:"professional_readiness"`
}

// SpeechMetrics is the full per-transcript feature and score bundle. Every
// field is a pure function of the transcript text and duration.
type SpeechMetrics struct {
	BasicMetrics       BasicMetrics       `json:"basic_metrics"`
	FillerAnalysis     FillerAnalysis     `json:"filler_analysis"`
	LanguageConfidence LanguageConfidence `json:"language_confidence"`
	SpeechPatterns     SpeechPatterns     `json:"speech_patterns"`
	PresentationScores PresentationScores `json:"presentation_scores"`
}

// PauseProfile keeps only silence gaps above 0.5s between consecutive cues.
// PauseRate is pauses per minute of cue count, not wall time; the unit is
// preserved from the original contract.
type PauseProfile struct {
	Pauses         []float64 `json:"pauses"`
	AvgPause       float64   `json:"avg_pause"`
	LongPauseCount int       `json:"long_pause_count"`
	PauseRate      float64   `json:"pause_rate"`
	TotalPauseTime float64   `json:"total_pause_time"`
}
