package models

type Priority string

const (
	PriorityCritical    Priority = "critical"
	PriorityHigh        Priority = "high"
	PriorityMedium      Priority = "medium"
	PriorityLow         Priority = "low"
	PriorityCelebration Priority = "celebration"
)

type Recommendation struct {
	Category         string   `json:"category"`
	Action           string   `json:"action,omitempty"`
	Suggestion       string   `json:"suggestion,omitempty"`
	Priority         Priority `json:"priority"`
	ScoreImpact      string   `json:"score_impact,omitempty"`
	PracticeExercise string   `json:"practice_exercise,omitempty"`
}

// RecommendationSet buckets generated advice. Rules fire independently;
// emission order matches rule declaration order.
type RecommendationSet struct {
	ImmediateActions        []Recommendation `json:"immediate_actions"`
	PracticeExercises       []string         `json:"practice_exercises"`
	LongTermGoals           []string         `json:"long_term_goals"`
	ProfessionalDevelopment []Recommendation `json:"professional_development"`
}

type PresentationStyle struct {
	StyleCategory        string   `json:"style_category"`
	Description          string   `json:"description"`
	NaturalStrengths     []string `json:"natural_strengths"`
	StyleRecommendations []string `json:"style_recommendations"`
}

type CredibilityInputs struct {
	ProfessionalVocabulary float64 `json:"professional_vocabulary"`
	UncertainLanguage      float64 `json:"uncertain_language"`
	Fluency                float64 `json:"fluency"`
	OverallTone            string  `json:"overall_tone"`
}

type CredibilityFactors struct {
	CredibilityScore float64           `json:"credibility_score"`
	Factors          CredibilityInputs `json:"factors"`
}

type AudienceImpact struct {
	PredictedEngagement   string             `json:"predicted_engagement"`
	EngagementDescription string             `json:"engagement_description"`
	ComprehensionLevel    string             `json:"comprehension_level"`
	CredibilityFactors    CredibilityFactors `json:"credibility_factors"`
}

type ImprovementArea struct {
	Area            string  `json:"area"`
	CurrentScore    float64 `json:"current_score"`
	PotentialImpact string  `json:"potential_impact"`
	Difficulty      string  `json:"difficulty"`
	TimeToImprove   string  `json:"time_to_improve"`
}

type BenchmarkTargets struct {
	OptimalWPM               string `json:"optimal_wpm"`
	MaxFillerRate            string `json:"max_filler_rate"`
	ConfidenceThreshold      string `json:"confidence_threshold"`
	ProfessionalVocabDensity string `json:"professional_vocab_density"`
}

type PerformanceSnapshot struct {
	WPM                      float64 `json:"wpm"`
	FillerRate               float64 `json:"filler_rate"`
	ConfidenceScore          float64 `json:"confidence_score"`
	ProfessionalVocabDensity float64 `json:"professional_vocab_density"`
}

type Benchmarks struct {
	ProfessionalPresentations BenchmarkTargets    `json:"professional_presentations"`
	YourPerformance           PerformanceSnapshot `json:"your_performance"`
}

type Percentiles struct {
	SpeakingPace             int `json:"speaking_pace"`
	Fluency                  int `json:"fluency"`
	OverallPresentationSkill int `json:"overall_presentation_skill"`
}

type BenchmarkComparison struct {
	Benchmarks           Benchmarks  `json:"benchmarks"`
	EstimatedPercentiles Percentiles `json:"estimated_percentiles"`
}

type CoachingInsights struct {
	PresentationStyle   PresentationStyle   `json:"presentation_style"`
	AudienceImpact      AudienceImpact      `json:"audience_impact"`
	ImprovementPriority []ImprovementArea   `json:"improvement_priority"`
	Benchmarking        BenchmarkComparison `json:"benchmarking"`
}

type ExecutiveSummary struct {
	TopStrengths     []string `json:"top_strengths"`
	ImprovementAreas []string `json:"improvement_areas"`
	Readiness        string   `json:"readiness"`
	NextSteps        []string `json:"next_steps"`
}

// ReportMetadata carries the only non-deterministic fields of a report.
// AnalysisTimestamp and ReportID are supplied by the service layer and are
// not part of the scored content.
type ReportMetadata struct {
	ReportID          string `json:"report_id"`
	AnalysisTimestamp string `json:"analysis_timestamp"`
	TranscriptLength  int    `json:"transcript_length"`
	AnalysisVersion   string `json:"analysis_version"`
}

type DetailedAnalysis struct {
	SpeechMetrics     SpeechMetrics  `json:"speech_metrics"`
	PauseAnalysis     PauseProfile   `json:"pause_analysis"`
	SentimentAnalysis *Sentiment     `json:"sentiment_analysis,omitempty"`
	VideoInsights     *VideoInsights `json:"video_insights,omitempty"`
}

type Report struct {
	Metadata         ReportMetadata    `json:"report_metadata"`
	ExecutiveSummary ExecutiveSummary  `json:"executive_summary"`
	DetailedAnalysis DetailedAnalysis  `json:"detailed_analysis"`
	Recommendations  RecommendationSet `json:"recommendations"`
	CoachingInsights CoachingInsights  `json:"coaching_insights"`
}

// Chat-friendly compact projection of a full report.

type SpeechPaceSummary struct {
	WordsPerMinute  float64 `json:"words_per_minute"`
	PaceCategory    string  `json:"pace_category"`
	PausePercentage float64 `json:"pause_percentage"`
}

type FillerBreakdown struct {
	Hesitation       int `json:"hesitation"`
	DiscourseMarkers int `json:"discourse_markers"`
}

type FillerSummary struct {
	TotalCount    int             `json:"total_count"`
	RatePerMinute float64         `json:"rate_per_minute"`
	Breakdown     FillerBreakdown `json:"breakdown"`
}

type SentimentSummary struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

type QualitySummary struct {
	OverallScore          float64 `json:"overall_score"`
	Grade                 string  `json:"grade"`
	ConfidenceLevel       string  `json:"confidence_level"`
	ProfessionalReadiness string  `json:"professional_readiness"`
}

type CombinedAnalysis struct {
	SpeechPace          SpeechPaceSummary `json:"speech_pace"`
	FillerWords         FillerSummary     `json:"filler_words"`
	Sentiment           *SentimentSummary `json:"sentiment,omitempty"`
	PresentationQuality QualitySummary    `json:"presentation_quality"`
	Recommendations     []string          `json:"recommendations"`
}
