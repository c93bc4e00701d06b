package table

import "html/template"

// View is the template-facing rendering of one page.
type View struct {
	Headers   []string
	Rows      []RowView
	Page      int
	PageSize  int
	PageSizes []int
	Total     int
	From      int
	To        int
	HasPrev   bool
	HasNext   bool
	PrevPage  int
	NextPage  int
}

type RowView struct {
	Cells      []template.HTML
	EditHref   string
	DeleteHref string
}

func (t *Table[T]) View() View {
	v := View{
		Page:      t.page,
		PageSize:  t.pageSize,
		PageSizes: PageSizes,
		Total:     len(t.data),
		HasPrev:   t.page > 0,
		HasNext:   t.page < t.LastPage(),
		PrevPage:  max(t.page-1, 0),
		NextPage:  min(t.page+1, t.LastPage()),
	}
	for _, c := range t.columns {
		v.Headers = append(v.Headers, c.Label)
	}
	rows := t.Rows()
	if len(rows) > 0 {
		v.From = t.page*t.pageSize + 1
		v.To = t.page*t.pageSize + len(rows)
	}
	for _, r := range rows {
		rv := RowView{Cells: make([]template.HTML, len(t.columns))}
		for i, c := range t.columns {
			if c.Render != nil {
				rv.Cells[i] = c.Render(r)
			}
		}
		if t.Actions != nil {
			rv.EditHref, rv.DeleteHref = t.Actions(r)
		}
		v.Rows = append(v.Rows, rv)
	}
	return v
}
