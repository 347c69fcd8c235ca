package grading

// StudentScore holds one student's raw weighted assessment scores for a
// subject and term, as fetched from storage.
type StudentScore struct {
	StudentID   int                  `json:"student_id"`
	Assessments []WeightedAssessment `json:"assessments"`
}

// StudentGrade is one row of a subject result sheet: the combined mark,
// its grade and the student's standing within the cohort.
type StudentGrade struct {
	StudentID    int     `json:"student_id"`
	FinalPercent float64 `json:"final_percent"`
	Label        string  `json:"label"`
	Point        float64 `json:"point"`
	Rank         int     `json:"rank"`
	Percentile   float64 `json:"percentile"`
}
