package studyModel

// Result schemas for the generation workflows. Every workflow fails closed:
// callers always get one of these shapes, possibly empty, never a raw panic
// or provider error.

type ChatResult struct {
	Response string   `json:"response"`
	Sources  []string `json:"sources"`
}

type SummaryRequest struct {
	SessionId    string `json:"session_id"`
	SummaryType  string `json:"summary_type"` //brief | detailed
	Context      string `json:"context,omitempty"`
	SourceFilter string `json:"source_filter,omitempty"`
}

type QuizRequest struct {
	SessionId    string `json:"session_id"`
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"` //easy | medium | hard
	NumQuestions int    `json:"num_questions"`
}

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Topic    string   `json:"topic"`
}

type QuizResult struct {
	Questions  []QuizQuestion `json:"questions"`
	Count      int            `json:"count"`
	Difficulty string         `json:"difficulty"`
	Requested  int            `json:"requested,omitempty"`
	Warning    string         `json:"warning,omitempty"`
	Error      string         `json:"error,omitempty"`
}

type WeakSpot struct {
	Question      string `json:"question"`
	Topic         string `json:"topic"`
	CorrectAnswer string `json:"correct_answer"`
	YourAnswer    string `json:"your_answer"`
}

type QuizAnalysis struct {
	Score          int        `json:"score"`
	Total          int        `json:"total"`
	WeakSpots      []WeakSpot `json:"weak_spots"`
	TopicsToReview []string   `json:"topics_to_review,omitempty"`
	Recommendation string     `json:"recommendation"`
}

type PaperSection struct {
	Name             string `json:"name"`
	Type             string `json:"type"` //mcq | short | long
	Count            int    `json:"count"`
	MarksPerQuestion int    `json:"marks_per_question"`
	Description      string `json:"description"`
}

// PaperPattern is the structure extracted from a previous-year paper.
type PaperPattern struct {
	Sections   []PaperSection `json:"sections"`
	TotalMarks int            `json:"total_marks"`
	Difficulty string         `json:"difficulty"`
}

type PaperQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GeneratedSection struct {
	Section   string          `json:"section"`
	Marks     int             `json:"marks"`
	Questions []PaperQuestion `json:"questions"`
}

type PaperResult struct {
	Paper           []GeneratedSection `json:"paper"`
	OriginalPattern PaperPattern       `json:"original_pattern"`
}

type Slide struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
	Notes  string   `json:"notes"`
}
