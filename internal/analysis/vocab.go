package analysis

import "regexp"

// Fixed vocabularies, compiled once at process start. These lists are the
// scoring contract: changing a word changes every downstream score, so they
// live here as immutable configuration rather than per-call literals.
var (
	hesitationPattern = regexp.MustCompile(`(?i)\b(um+|uh+|er+|ah+)\b`)

	discoursePattern = regexp.MustCompile(`(?i)\b(like|you know|so|actually|basically|literally|right|okay)\b`)

	// Superset consumed only by the legacy basic-metrics path.
	genericFillerPattern = regexp.MustCompile(`(?i)\b(um+|uh+|er+|ah+|like|you know|so|actually|basically|literally)\b`)

	intensifierPattern = regexp.MustCompile(`(?i)\b(very|really|totally|absolutely|completely|extremely)\b`)

	professionalPattern = regexp.MustCompile(`(?i)\b(implement|analyze|optimize|strategy|solution|framework|methodology|approach|evaluate|assess|demonstrate|indicate|suggest|recommend|conclude)\b`)

	weakLanguagePattern = regexp.MustCompile(`(?i)\b(maybe|perhaps|kind of|sort of|i think|i guess|probably|might|could be)\b`)

	highEnergyPattern = regexp.MustCompile(`(?i)\b(amazing|incredible|fantastic|excellent|awesome|exciting|wonderful|powerful|brilliant|outstanding)\b`)
)

// engagementPhrases are matched as literal substrings of the lowercased text.
var engagementPhrases = []string{
	"let's",
	"imagine",
	"picture this",
	"think about",
	"what if",
	"you can",
	"together",
}

// Pace categories and their coaching lines.
const (
	paceVerySlow = "very_slow"
	paceSlow     = "slow"
	paceOptimal  = "optimal"
	paceFast     = "fast"
	paceVeryFast = "very_fast"
)

var paceRecommendations = map[string]string{
	paceVerySlow: "Increase your speaking pace significantly to keep the audience engaged",
	paceSlow:     "Pick up the pace slightly to maintain energy and momentum",
	paceOptimal:  "Excellent pacing - maintain this comfortable, clear speed",
	paceFast:     "Slow down slightly so every point lands clearly",
	paceVeryFast: "Reduce your pace substantially - the audience may struggle to follow",
}

// Presenter archetypes and their fixed tip lists.
const (
	styleDynamicEnergetic     = "dynamic_energetic"
	styleThoughtfulDeliberate = "thoughtful_deliberate"
	styleDevelopingPresenter  = "developing_presenter"
	styleBalancedProfessional = "balanced_professional"
)

var styleDescriptions = map[string]string{
	styleDynamicEnergetic:     "Fast-paced, energetic presenter who engages through enthusiasm",
	styleThoughtfulDeliberate: "Measured, thoughtful presenter who emphasizes depth over pace",
	styleDevelopingPresenter:  "Developing presentation skills, building confidence and fluency",
	styleBalancedProfessional: "Well-balanced presentation style with good fundamentals",
}

var styleTips = map[string][]string{
	styleDynamicEnergetic: {
		"Use your natural energy as a strength, but ensure clarity isn't sacrificed for pace",
		"Practice strategic pauses to let key points sink in",
		"Channel enthusiasm into varied vocal inflection",
	},
	styleThoughtfulDeliberate: {
		"Leverage your measured approach by emphasizing key transitions",
		"Use your natural pauses to build anticipation",
		"Consider adding more energy at crucial moments",
	},
	styleDevelopingPresenter: {
		"Focus on building one skill at a time - start with pace or filler reduction",
		"Practice with familiar topics to build confidence",
		"Record yourself regularly to track improvement",
	},
	styleBalancedProfessional: {
		"Fine-tune advanced techniques like storytelling and audience interaction",
		"Work on varying energy levels throughout the presentation",
		"Focus on executive presence and gravitas",
	},
}
