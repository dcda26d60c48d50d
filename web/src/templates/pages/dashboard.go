package pages

import (
	"github.com/scrapriq/dashboard/internal/dashboard"
	"github.com/scrapriq/dashboard/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Element IDs targeted by htmx swaps.
const (
	StatusPanelID  = "status-panel"
	ScrapePanelID  = "scrape-panel"
	ScrapeOutputID = "scrape-output"
)

// toggleClear keeps the clear button in step with the URL input between
// requests. It mirrors dashboard.View.ClearDisabled.
const toggleClear = `this.querySelector('#clear-button').disabled = ` +
	`!this.querySelector('#target_url').value.trim() && !document.getElementById('` + ScrapeOutputID + `')`

var printer = message.NewPrinter(language.English)

// Dashboard is the full content of the dashboard page.
func Dashboard(v *dashboard.View) g.Node {
	return h.Div(
		h.Class("dashboard"),
		h.H1(g.Text("ScraprIQ Dashboard")),
		StatusPanel(v),
		ScrapePanel(v, false),
	)
}

// StatusPanel shows backend connectivity and the retry button.
func StatusPanel(v *dashboard.View) g.Node {
	statusClass := "status status--error"
	if v.Connected {
		statusClass = "status status--ok"
	}

	return h.Section(
		h.ID(StatusPanelID),
		h.Class("paper"),
		h.H2(g.Text("Backend Status:")),
		h.P(h.ID("backend-status"), h.Class(statusClass), g.Text(v.Status)),
		g.If(v.Error != "", alert("error", v.Error)),
		h.Button(
			h.Type("button"),
			h.Class("btn btn--contained"),
			hx.Post("/health/check"),
			hx.Target("#"+StatusPanelID),
			hx.Swap("outerHTML"),
			hx.Indicator("#status-spinner"),
			hx.Include("#target_url"),
			g.Attr("hx-disabled-elt", "this"),
			g.If(v.Checking(), h.Disabled()),
			g.Text("Retry Backend Connection"),
		),
		h.Span(h.ID("status-spinner"), h.Class("htmx-indicator"), g.Text(dashboard.StatusChecking)),
	)
}

// ScrapePanel holds the URL form, any message and the results table. With
// oob set it is marked for an out-of-band swap so a status refresh can
// re-enable or lock the form.
func ScrapePanel(v *dashboard.View, oob bool) g.Node {
	return h.Section(
		h.ID(ScrapePanelID),
		h.Class("paper"),
		g.If(oob, hx.SwapOOB("true")),
		h.H2(g.Text("Scrape Company Leads")),
		h.Form(
			h.ID("scrape-form"),
			hx.Post("/scrape"),
			hx.Target("#"+ScrapePanelID),
			hx.Swap("outerHTML"),
			hx.Indicator("#scrape-spinner"),
			g.Attr("hx-disabled-elt", "find input, find button"),
			g.Attr("hx-on:input", toggleClear),
			h.Label(h.For("target_url"), g.Text("Company Team/About Us Page URL")),
			h.Input(
				h.Type("text"),
				h.ID("target_url"),
				h.Name("target_url"),
				h.Value(v.TargetURL),
				h.Placeholder("e.g., https://www.scrapingbee.com/team/"),
				g.If(v.InputDisabled(), h.Disabled()),
			),
			h.Div(
				h.Class("actions"),
				h.Button(
					h.Type("submit"),
					h.ID("scrape-button"),
					h.Class("btn btn--contained"),
					g.If(v.InputDisabled(), h.Disabled()),
					g.Text("Scrape Leads"),
					h.Span(h.ID("scrape-spinner"), h.Class("htmx-indicator"), g.Text(" …")),
				),
				h.Button(
					h.Type("button"),
					h.ID("clear-button"),
					h.Class("btn btn--outlined"),
					hx.Post("/clear"),
					hx.Target("#"+ScrapePanelID),
					hx.Swap("outerHTML"),
					g.If(v.ClearDisabled(), h.Disabled()),
					g.Text("Clear"),
				),
			),
		),
		g.If(v.HasOutput(), h.Div(
			h.ID(ScrapeOutputID),
			g.If(v.ScrapeError != "", alert("error", v.ScrapeError)),
			g.If(v.ScrapeNotice != "", alert("info", v.ScrapeNotice)),
			g.If(len(v.Leads) > 0, LeadsTable(v.Leads)),
		)),
	)
}

// LeadsTable renders one row per lead with the six display columns.
func LeadsTable(leads []domain.Lead) g.Node {
	return h.Div(
		h.ID("results"),
		h.H2(g.Text(printer.Sprintf("Scraped Leads (%d)", len(leads)))),
		h.Table(
			h.Class("leads"),
			g.Attr("aria-label", "scraped leads table"),
			h.THead(h.Tr(g.Map(domain.LeadColumns, func(col string) g.Node {
				return h.Th(g.Text(domain.ColumnLabel(col)))
			}))),
			h.TBody(g.Map(leads, leadRow)),
		),
	)
}

func leadRow(lead domain.Lead) g.Node {
	cells := make([]g.Node, 0, len(domain.LeadColumns))
	for i, col := range domain.LeadColumns {
		if i == 0 {
			cells = append(cells, h.Th(g.Attr("scope", "row"), g.Text(lead.Field(col))))
			continue
		}
		cells = append(cells, h.Td(g.Text(lead.Field(col))))
	}
	return h.Tr(g.Attr("data-key", lead.RowKey()), g.Group(cells))
}

func alert(severity, message string) g.Node {
	return h.Div(h.Class("alert alert--"+severity), h.Role("alert"), g.Text(message))
}
