package dto

// ImportRequest carries already-tabularized rows; spreadsheet parsing is
// the caller's concern. Column naming inside each row is free-form.
type ImportRequest struct {
	EntityType string           `json:"entity_type" binding:"required,oneof=students lecturers hod staff"`
	Rows       []map[string]any `json:"rows" binding:"required"`
}

// RowOutcome records what happened to one imported row. Row numbers are
// offset by one for the header row, matching what operators see in their
// spreadsheet.
type RowOutcome struct {
	Row   int            `json:"row"`
	ID    string         `json:"id,omitempty"`
	Name  string         `json:"name,omitempty"`
	Error string         `json:"error,omitempty"`
	Data  map[string]any `json:"data,omitempty"`
}

type ImportDetails struct {
	Success      []RowOutcome `json:"success"`
	Created      []RowOutcome `json:"created"`
	Updated      []RowOutcome `json:"updated"`
	Errors       []RowOutcome `json:"errors"`
	ColumnsFound []string     `json:"columns_found"`
}

type ImportSummary struct {
	Total      int           `json:"total"`
	Successful int           `json:"successful"`
	Created    int           `json:"created"`
	Updated    int           `json:"updated"`
	Failed     int           `json:"failed"`
	Details    ImportDetails `json:"details"`
}

type ExamUploadRequest struct {
	Rows []map[string]any `json:"rows" binding:"required"`
}
