package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"stabilitylog/internal/stability"
	"stabilitylog/internal/views/components"
	"stabilitylog/internal/views/layout"
	"stabilitylog/internal/views/tabs"
)

const (
	// ChamberListID is the datalist backing chamber autocomplete.
	ChamberListID = "chamber-options"
	// IntervalListID is the datalist of suggested intervals.
	IntervalListID = "interval-options"
)

// WorkspaceView is everything the workspace page renders.
type WorkspaceView struct {
	Tab        tabs.Tab
	Draft      stability.BatchRecord
	Records    []stability.BatchRecord
	Chambers   []string
	DialogOpen bool
	MinRows    int
	Notice     string
}

// Workspace renders the full document for the selected tab.
func Workspace(view WorkspaceView) templ.Component {
	return layout.Layout(view.Tab.Title, components.Sidebar(view.Tab.Key), WorkspacePartial(view))
}

// WorkspacePartial renders only the page body, for htmx swaps.
func WorkspacePartial(view WorkspaceView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := components.NewPrinter(w)
		p.Rawf(`<section data-tab="%s"><h2>%s</h2>`, components.Esc(view.Tab.Key), components.Esc(view.Tab.Title))
		p.Component(ctx, components.Notice(view.Notice))

		switch view.Tab.Key {
		case tabs.Home:
			renderDraftForm(ctx, p, view)
			renderRecordsTable(p, view.Records)
		case tabs.Excel:
			p.Rawf(`<p>%s</p>`, components.Esc(view.Tab.Blurb))
			renderImportForm(p)
			p.Rawf(`<p>%s</p>`, components.Esc(RowCountSummary(len(view.Draft.Schedule))))
		default:
			p.Rawf(`<p>%s</p>`, components.Esc(view.Tab.Blurb))
		}

		p.Raw(`</section>`)
		return p.Err()
	})
}

func renderDraftForm(ctx context.Context, p *components.Printer, view WorkspaceView) {
	draft := view.Draft
	rows := len(draft.Schedule)

	p.Component(ctx, components.Datalist(ChamberListID, view.Chambers))
	p.Component(ctx, components.Datalist(IntervalListID, stability.IntervalOptions()))

	p.Raw(`<form method="post" action="/draft" class="draft-form"><fieldset><legend>Batch Record</legend>`)
	for _, field := range stability.HeaderFields() {
		required := ""
		marker := ""
		if field.IsRequired() {
			required = " required"
			marker = " *"
		}
		p.Rawf(`<label for="%[1]s">%[2]s%[3]s</label><input id="%[1]s" name="%[1]s" type="%[4]s" value="%[5]s"%[6]s>`,
			components.Esc(HeaderInputName(field)),
			components.Esc(field.Label()),
			marker,
			headerInputType(field),
			components.Esc(draft.Get(field)),
			required,
		)
	}
	p.Raw(`</fieldset>`)

	p.Rawf(`<p class="row-count">%s</p>`, components.Esc(RowCountSummary(rows)))
	p.Raw(`<div class="actions">`)
	p.Raw(`<button type="submit" name="action" value="add-row">Add Row</button>`)
	if draft.Complete() {
		p.Raw(`<button type="submit" name="action" value="open-dialog">Edit Full Analysis Data</button>`)
	} else {
		p.Raw(`<button type="submit" name="action" value="open-dialog" disabled>Edit Full Analysis Data</button>`)
	}
	p.Raw(`<button type="submit" name="action" value="finalize">Save Record</button>`)
	p.Raw(`<button type="submit" name="action" value="clear" formnovalidate>Clear Form</button>`)
	p.Raw(`</div>`)

	if rows > 0 {
		// Inputs live in exactly one table so each row field is posted once.
		editableInline := !view.DialogOpen
		renderScheduleTable(p, draft.Schedule, stability.PrimaryScheduleFields(), editableInline, view.MinRows)
	}

	if view.DialogOpen {
		p.Raw(`<dialog open aria-label="Schedule and analysis data"><h3>Schedule and Analysis Data</h3>`)
		renderScheduleTable(p, draft.Schedule, stability.ScheduleFields(), true, view.MinRows)
		p.Raw(`<div class="actions">`)
		p.Raw(`<button type="submit" name="action" value="add-row">Add Row</button>`)
		p.Raw(`<button type="submit" name="action" value="close-dialog">Close</button>`)
		p.Raw(`<button type="submit" name="action" value="finalize">Save Record</button>`)
		p.Raw(`</div></dialog>`)
	}

	p.Raw(`</form>`)
}

func renderScheduleTable(p *components.Printer, schedule []stability.ScheduleEntry, fields []stability.ScheduleField, editable bool, minRows int) {
	p.Raw(`<table class="schedule"><thead><tr>`)
	for _, field := range fields {
		p.Rawf(`<th>%s</th>`, components.Esc(field.Label()))
	}
	if editable {
		p.Raw(`<th>Actions</th>`)
	}
	p.Raw(`</tr></thead><tbody>`)

	for index, entry := range schedule {
		p.Rawf(`<tr data-row="%d">`, index)
		for _, field := range fields {
			if !editable {
				p.Rawf(`<td>%s</td>`, components.Esc(DefaultDash(entry.Get(field))))
				continue
			}
			list := ""
			if id := rowInputList(field); id != "" {
				list = fmt.Sprintf(` list="%s"`, id)
			}
			p.Rawf(`<td><input name="%s" type="%s" value="%s"%s></td>`,
				components.Esc(RowInputName(index, field)),
				rowInputType(field),
				components.Esc(entry.Get(field)),
				list,
			)
		}
		if editable {
			disabled := ""
			if len(schedule) <= minRows {
				disabled = " disabled"
			}
			p.Rawf(`<td><button type="submit" name="action" value="remove-row:%d" title="Remove Row" formnovalidate%s>Remove</button></td>`, index, disabled)
		}
		p.Raw(`</tr>`)
	}
	p.Raw(`</tbody></table>`)
}

func renderRecordsTable(p *components.Printer, records []stability.BatchRecord) {
	p.Raw(`<h3>Batch Records</h3>`)
	if len(records) == 0 {
		p.Raw(`<p class="empty">No batch records saved yet.</p>`)
		return
	}

	p.Raw(`<table class="records"><thead><tr>`)
	for _, heading := range []string{"Plan No", "Product", "Batch No", "Mfg Date", "Market", "Type Of Batch", "Rows", "Actions"} {
		p.Rawf(`<th>%s</th>`, heading)
	}
	p.Raw(`</tr></thead><tbody>`)
	for index, record := range records {
		p.Rawf(`<tr data-record="%d">`, index)
		for _, value := range []string{record.PlanNo, record.Product, record.BatchNo, record.MfgDate, record.Market, record.TypeOfBatch} {
			p.Rawf(`<td>%s</td>`, components.Esc(DefaultDash(value)))
		}
		p.Rawf(`<td>%d</td>`, len(record.Schedule))
		p.Rawf(`<td><a href="/records/%[1]d">View</a>`+
			`<form method="post" action="/records/%[1]d/edit"><button type="submit">Edit</button></form>`+
			`<form method="post" action="/records/%[1]d/delete"><button type="submit">Delete</button></form></td>`, index)
		p.Raw(`</tr>`)
	}
	p.Raw(`</tbody></table>`)
}

func renderImportForm(p *components.Printer) {
	p.Raw(`<form method="post" action="/draft/import" enctype="multipart/form-data" class="import-form">`)
	p.Raw(`<label for="file">Schedule CSV</label><input id="file" name="file" type="file" accept=".csv,text/csv">`)
	p.Raw(`<label for="csv">or paste CSV</label><textarea id="csv" name="csv" rows="8"></textarea>`)
	p.Raw(`<button type="submit">Import Rows</button></form>`)
}

// RecordDetail renders one stored record read-only.
func RecordDetail(index int, record stability.BatchRecord) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := components.NewPrinter(w)
		p.Rawf(`<section data-record="%d"><h2>Batch Record Details</h2><dl>`, index)
		for _, field := range stability.HeaderFields() {
			p.Rawf(`<dt>%s</dt><dd>%s</dd>`, components.Esc(field.Label()), components.Esc(DefaultDash(record.Get(field))))
		}
		p.Raw(`</dl><h3>Schedule and Analysis</h3>`)
		if len(record.Schedule) == 0 {
			p.Raw(`<p class="empty">No schedule rows.</p>`)
		} else {
			renderScheduleTable(p, record.Schedule, stability.ScheduleFields(), false, 0)
		}
		p.Rawf(`<form method="post" action="/records/%d/edit"><button type="submit">Edit</button></form>`, index)
		p.Raw(`<a href="/">Back</a></section>`)
		return p.Err()
	})
	return layout.Layout("Batch "+record.BatchNo, components.Sidebar(tabs.Home), content)
}
