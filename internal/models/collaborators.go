package models

// Sentiment is the shape required from the cloud sentiment collaborator.
// Percentages are fractions in [0,1], rounded to two decimals.
type Sentiment struct {
	Overall     string  `json:"overall"` // positive | neutral | negative | mixed
	PositivePct float64 `json:"positive_pct"`
	NegativePct float64 `json:"negative_pct"`
}

// VideoInsights is the adapter output of the cloud video collaborator:
// visual-engagement and confidence signals derived from face detection.
type VideoInsights struct {
	Summary              string   `json:"summary"`
	EngagementLevel      string   `json:"engagement_level"`
	AverageSmileScore    float64  `json:"average_smile_score"`
	VideoQuality         string   `json:"video_quality"`
	ConfidenceIndicators []string `json:"confidence_indicators"`
	Recommendations      []string `json:"recommendations"`
	FacesDetected        int      `json:"faces_detected"`
	FramesAnalyzed       int      `json:"frames_analyzed"`
}
