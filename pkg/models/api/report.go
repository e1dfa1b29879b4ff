package api

type Banner struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

type ChartRow struct {
	Key   string  `json:"key"`
	Split string  `json:"split,omitempty"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

type Chart struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	Title      string     `json:"title"`
	XLabel     string     `json:"x_label"`
	YLabel     string     `json:"y_label"`
	SplitLabel string     `json:"split_label,omitempty"`
	Rows       []ChartRow `json:"rows"`
}

type Report struct {
	Mode        string  `json:"mode"`
	YearEnabled bool    `json:"year_enabled"`
	Year        *int    `json:"year,omitempty"`
	Banner      Banner  `json:"banner"`
	Empty       bool    `json:"empty"`
	Condition   string  `json:"condition,omitempty"`
	Reason      string  `json:"reason"`
	Charts      []Chart `json:"charts"`
}

type Years struct {
	Years []int `json:"years"`
}

type Error struct {
	Error string `json:"error"`
}
