package paste

// Summary is a paste without its export code.
// Used by list operations to keep results small.
type Summary struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Level      int     `json:"level"`
	ClassName  string  `json:"class_name"`
	Ascendancy *string `json:"ascendancy,omitempty"`
	MainSkill  *string `json:"main_skill,omitempty"`
	CodeBytes  int     `json:"code_bytes"`
	CreatedAt  int64   `json:"created_at"`
	DeletedAt  *int64  `json:"deleted_at,omitempty"`
}

// ToSummary strips the export code.
func (p *Paste) ToSummary() Summary {
	return Summary{
		ID:         p.ID,
		Title:      p.Title,
		Level:      p.Level,
		ClassName:  p.ClassName,
		Ascendancy: p.Ascendancy,
		MainSkill:  p.MainSkill,
		CodeBytes:  len(p.Code),
		CreatedAt:  p.CreatedAt,
		DeletedAt:  p.DeletedAt,
	}
}
