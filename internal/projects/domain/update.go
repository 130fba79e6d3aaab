package domain

import "sort"

// ProjectUpdate is the set of descriptive fields a client may change directly.
// Nil fields are left untouched.
type ProjectUpdate struct {
	ProjectName *string                `json:"projectName"`
	Status      *string                `json:"status"`
	Timeline    *string                `json:"timeline"`
	Dashboard   map[string]interface{} `json:"dashboard"`
}

func (u ProjectUpdate) IsEmpty() bool {
	return u.ProjectName == nil && u.Status == nil && u.Timeline == nil && u.Dashboard == nil
}

// Fields returns the document field names and values to write.
func (u ProjectUpdate) Fields() map[string]interface{} {
	out := make(map[string]interface{}, 4)
	if u.ProjectName != nil {
		out["projectName"] = *u.ProjectName
	}
	if u.Status != nil {
		out["status"] = *u.Status
	}
	if u.Timeline != nil {
		out["timeline"] = *u.Timeline
	}
	if u.Dashboard != nil {
		out["dashboard"] = u.Dashboard
	}
	return out
}

// FieldNames returns the names from Fields in a stable order.
func (u ProjectUpdate) FieldNames() []string {
	f := u.Fields()
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ApplyTo writes the set fields into p.
func (u ProjectUpdate) ApplyTo(p *Project) {
	if u.ProjectName != nil {
		p.ProjectName = *u.ProjectName
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Timeline != nil {
		p.Timeline = *u.Timeline
	}
	if u.Dashboard != nil {
		p.Dashboard = u.Dashboard
	}
}
