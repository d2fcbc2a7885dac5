package models

// OverallStats is the descriptive summary of a whole (possibly filtered)
// record set.
type OverallStats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"stdDev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	PassRate float64 `json:"passRate"`
}

// GroupStats is the per-group aggregate of a grouped computation. Groups
// with zero grades are never emitted; absence means no data.
type GroupStats struct {
	Key      string  `json:"key"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"stdDev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	PassRate float64 `json:"passRate"`
}

// Bin is one histogram bucket over the grade scale. Upper bounds are
// exclusive except for the last bin, which includes GradeMax.
type Bin struct {
	Label string  `json:"label"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// GroupRanking is a ranking scoped to one group (a department, a course...).
type GroupRanking struct {
	Key     string         `json:"key"`
	Entries []RankingEntry `json:"entries"`
}

// RankingEntry is one row of a ranking: the student's composite score and
// dense rank within the ranked scope.
type RankingEntry struct {
	Rank       int     `json:"rank"`
	StudentID  string  `json:"studentId"`
	LastName   string  `json:"lastName"`
	FirstName  string  `json:"firstName"`
	Department string  `json:"department"`
	Program    string  `json:"program"`
	Level      string  `json:"level"`
	Score      float64 `json:"score"`
}
